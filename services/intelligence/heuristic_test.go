package intelligence

import (
	"context"
	"testing"

	"turnero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeText(t *testing.T, text string) *models.RouteResult {
	t.Helper()
	router := NewHeuristicRouter()
	res, err := router.Route(context.Background(), models.RouteRequest{
		Text:       text,
		TenantName: "Clinica Demo",
		Services: []models.Service{
			{ID: "limpieza", Name: "Limpieza Dental", Active: true},
			{ID: "consulta", Name: "Consulta General", Active: true},
		},
	})
	require.NoError(t, err)
	return res
}

func TestHeuristicRouterIntents(t *testing.T) {
	cases := []struct {
		text   string
		intent string
	}{
		{"cuanto cuesta la consulta?", models.IntentPrices},
		{"quiero cancelar mi turno de la semana que viene", models.IntentCancellation},
		{"necesito hablar con un humano", models.IntentHandoff},
		{"quiero reservar un turno", models.IntentBooking},
		{"dale, confirmo", models.IntentConfirmation},
		{"asdfghjkl", models.IntentOther},
	}
	for _, tc := range cases {
		res := routeText(t, tc.text)
		assert.Equal(t, tc.intent, res.Intent, "text: %q", tc.text)
		assert.NotEmpty(t, res.Reply)
	}
}

func TestHeuristicRouterExtractsServiceName(t *testing.T) {
	res := routeText(t, "me gustaria una limpieza dental por favor")
	assert.Equal(t, models.IntentBooking, res.Intent)
	assert.Equal(t, "Limpieza Dental", res.Entities.ServiceName)
}

func TestHeuristicRouterMatchesPartialServiceWord(t *testing.T) {
	res := routeText(t, "tienen limpieza?")
	assert.Equal(t, models.IntentBooking, res.Intent)
	assert.Equal(t, "Limpieza Dental", res.Entities.ServiceName)
}
