package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/xml"
	"net/http"
	"sort"

	"turnero/config"
	tenantRepo "turnero/database/repository/tenant"
	"turnero/services/booking"
	"turnero/services/dedupe"
	"turnero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler is the inbound message boundary: it verifies the channel
// signature, short-circuits redelivered messages, resolves the tenant and
// hands the message to the engine.
type WebhookHandler struct {
	Engine  booking.Engine
	Tenants tenantRepo.TenantRepository
	Dedupe  dedupe.Guard
}

func NewWebhookHandler(engine booking.Engine, tenants tenantRepo.TenantRepository, guard dedupe.Guard) *WebhookHandler {
	return &WebhookHandler{Engine: engine, Tenants: tenants, Dedupe: guard}
}

type channelResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}

func replyXML(c *gin.Context, status int, message string) {
	c.XML(status, channelResponse{Message: message})
}

// HandleInbound processes one webhook delivery for a tenant.
func (h *WebhookHandler) HandleInbound(c *gin.Context) {
	logger := utils.GetLogger()
	tenantSlug := c.Param("tenant")

	if err := c.Request.ParseForm(); err != nil {
		replyXML(c, http.StatusBadRequest, "Malformed payload")
		return
	}
	from := c.Request.PostFormValue("From")
	body := c.Request.PostFormValue("Body")
	messageID := c.Request.PostFormValue("MessageSid")

	tenant, err := h.Tenants.GetBySlug(tenantSlug)
	if err == tenantRepo.ErrNotFound {
		logger.Warn("webhook for unknown tenant", zap.String("tenant", tenantSlug))
		replyXML(c, http.StatusNotFound, "Unknown account")
		return
	}
	if err != nil {
		logger.Error("tenant lookup failed", zap.String("tenant", tenantSlug), zap.Error(err))
		replyXML(c, http.StatusInternalServerError, "Temporary error, please retry")
		return
	}

	if !h.validSignature(c, tenant.ChannelAuthToken) {
		logger.Warn("invalid webhook signature",
			zap.String("tenant", tenantSlug), zap.String("from", from))
		replyXML(c, http.StatusForbidden, "Unauthorized")
		return
	}

	// Idempotency guard. A guard outage fails open: processing twice is
	// recoverable, dropping all traffic is not.
	seen, err := h.Dedupe.MarkSeen(c.Request.Context(), messageID)
	if err != nil {
		logger.Warn("dedupe guard degraded, processing anyway",
			zap.String("messageId", messageID), zap.Error(err))
	}
	if seen {
		replyXML(c, http.StatusOK, "")
		return
	}

	result, err := h.Engine.Process(c.Request.Context(), tenant, from, body)
	if err != nil {
		logger.Error("engine failed", zap.String("tenant", tenantSlug), zap.Error(err))
		replyXML(c, http.StatusInternalServerError, "Temporary error, please retry")
		return
	}

	replyXML(c, http.StatusOK, result.Reply)
}

// validSignature checks the provider HMAC-SHA1 signature: base64 of the HMAC
// over the full URL concatenated with the sorted POST parameters. An empty
// token skips validation with a warning (local development).
func (h *WebhookHandler) validSignature(c *gin.Context, tenantToken string) bool {
	token := tenantToken
	if token == "" {
		token = config.AppConfig.ChannelAuthToken
	}
	if token == "" {
		utils.GetLogger().Warn("channel auth token missing, skipping signature validation")
		return true
	}

	signature := c.GetHeader("X-Channel-Signature")
	if signature == "" {
		return false
	}

	keys := make([]string, 0, len(c.Request.PostForm))
	for k := range c.Request.PostForm {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(token))
	mac.Write([]byte(requestURL(c)))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(c.Request.PostFormValue(k)))
	}
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

func requestURL(c *gin.Context) string {
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "https"
	}
	return proto + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
