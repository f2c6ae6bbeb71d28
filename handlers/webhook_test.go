package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	tenantRepo "turnero/database/repository/tenant"
	"turnero/models"
	"turnero/services/dedupe"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEngine struct {
	reply string
	err   error
	calls int
}

func (e *stubEngine) Process(_ context.Context, _ *models.Tenant, _, _ string) (*models.EngineReply, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return &models.EngineReply{Reply: e.reply, State: models.StateHome}, nil
}

type fakeTenants struct {
	tenants map[string]*models.Tenant
}

func (f *fakeTenants) GetBySlug(slug string) (*models.Tenant, error) {
	if t, ok := f.tenants[slug]; ok {
		return t, nil
	}
	return nil, tenantRepo.ErrNotFound
}

func (f *fakeTenants) UpdateServices(slug string, services []models.Service) error {
	t, ok := f.tenants[slug]
	if !ok {
		return tenantRepo.ErrNotFound
	}
	t.Services = services
	return nil
}

func webhookRouter(engine *stubEngine, tenants *fakeTenants, guard dedupe.Guard) *gin.Engine {
	h := NewWebhookHandler(engine, tenants, guard)
	r := gin.New()
	r.POST("/api/webhooks/channel/:tenant", h.HandleInbound)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookRepliesWithEngineOutput(t *testing.T) {
	engine := &stubEngine{reply: "Welcome to Clinic Demo"}
	tenants := &fakeTenants{tenants: map[string]*models.Tenant{
		"clinic": {ID: "tenant-1", Slug: "clinic", Name: "Clinic Demo"},
	}}
	r := webhookRouter(engine, tenants, dedupe.NewMemoryGuard(time.Minute))

	w := postForm(r, "/api/webhooks/channel/clinic", url.Values{
		"From":       {"+5491122334455"},
		"Body":       {"hola"},
		"MessageSid": {"SM001"},
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Response>")
	assert.Contains(t, w.Body.String(), "Welcome to Clinic Demo")
	assert.Equal(t, 1, engine.calls)
}

func TestWebhookDuplicateDeliveryProcessedOnce(t *testing.T) {
	engine := &stubEngine{reply: "hi"}
	tenants := &fakeTenants{tenants: map[string]*models.Tenant{
		"clinic": {ID: "tenant-1", Slug: "clinic", Name: "Clinic Demo"},
	}}
	r := webhookRouter(engine, tenants, dedupe.NewMemoryGuard(time.Minute))

	form := url.Values{
		"From":       {"+5491122334455"},
		"Body":       {"hola"},
		"MessageSid": {"SM002"},
	}
	first := postForm(r, "/api/webhooks/channel/clinic", form, nil)
	second := postForm(r, "/api/webhooks/channel/clinic", form, nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, engine.calls)
	assert.NotContains(t, second.Body.String(), "<Message>")
}

func TestWebhookUnknownTenant(t *testing.T) {
	engine := &stubEngine{reply: "hi"}
	r := webhookRouter(engine, &fakeTenants{tenants: map[string]*models.Tenant{}}, dedupe.NewMemoryGuard(time.Minute))

	w := postForm(r, "/api/webhooks/channel/nope", url.Values{
		"From": {"+1"}, "Body": {"hola"}, "MessageSid": {"SM003"},
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, engine.calls)
}

func channelSignature(token, fullURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(token))
	mac.Write([]byte(fullURL))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(form.Get(k)))
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestWebhookSignatureValidation(t *testing.T) {
	engine := &stubEngine{reply: "hi"}
	tenants := &fakeTenants{tenants: map[string]*models.Tenant{
		"clinic": {ID: "tenant-1", Slug: "clinic", Name: "Clinic Demo", ChannelAuthToken: "secret-token"},
	}}
	r := webhookRouter(engine, tenants, dedupe.NewMemoryGuard(time.Minute))

	form := url.Values{
		"From":       {"+5491122334455"},
		"Body":       {"hola"},
		"MessageSid": {"SM004"},
	}

	// No signature header.
	w := postForm(r, "/api/webhooks/channel/clinic", form, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, engine.calls)

	// Wrong signature.
	w = postForm(r, "/api/webhooks/channel/clinic", form, map[string]string{
		"X-Channel-Signature": "bogus",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, engine.calls)

	// Valid signature over the reconstructed URL and sorted params.
	sig := channelSignature("secret-token", "https://example.com/api/webhooks/channel/clinic", form)
	w = postForm(r, "/api/webhooks/channel/clinic", form, map[string]string{
		"X-Channel-Signature": sig,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, engine.calls)
}
