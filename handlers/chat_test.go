package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"turnero/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatRouter(engine *stubEngine, tenants *fakeTenants) *gin.Engine {
	h := NewChatHandler(engine, tenants)
	r := gin.New()
	r.POST("/api/chat", h.HandleChat)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatReturnsEngineReply(t *testing.T) {
	engine := &stubEngine{reply: "pick a service"}
	tenants := &fakeTenants{tenants: map[string]*models.Tenant{
		"clinic": {ID: "tenant-1", Slug: "clinic", Name: "Clinic Demo"},
	}}
	r := chatRouter(engine, tenants)

	w := postJSON(r, "/api/chat", `{"tenantSlug":"clinic","from":"simulator-1","text":"1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pick a service")
	assert.Contains(t, w.Body.String(), models.StateHome)
	assert.Equal(t, 1, engine.calls)
}

func TestChatValidatesInput(t *testing.T) {
	engine := &stubEngine{reply: "hi"}
	r := chatRouter(engine, &fakeTenants{tenants: map[string]*models.Tenant{}})

	w := postJSON(r, "/api/chat", `{"text":"hola"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, engine.calls)
}

func TestChatUnknownTenant(t *testing.T) {
	engine := &stubEngine{reply: "hi"}
	r := chatRouter(engine, &fakeTenants{tenants: map[string]*models.Tenant{}})

	w := postJSON(r, "/api/chat", `{"tenantSlug":"ghost","from":"simulator-1","text":"hola"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, engine.calls)
}
