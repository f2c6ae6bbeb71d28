package handlers

import (
	"net/http"

	tenantRepo "turnero/database/repository/tenant"
	"turnero/services/booking"
	"turnero/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler is the JSON endpoint behind the dashboard simulator. It runs
// the same engine as the webhook but without the channel envelope.
type ChatHandler struct {
	Engine  booking.Engine
	Tenants tenantRepo.TenantRepository
}

func NewChatHandler(engine booking.Engine, tenants tenantRepo.TenantRepository) *ChatHandler {
	return &ChatHandler{Engine: engine, Tenants: tenants}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var input struct {
		TenantSlug string `json:"tenantSlug" binding:"required"`
		From       string `json:"from" binding:"required"`
		Text       string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tenant, err := h.Tenants.GetBySlug(input.TenantSlug)
	if err == tenantRepo.ErrNotFound {
		utils.JSONError(c, http.StatusNotFound, "tenant not found", input.TenantSlug)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tenant", err.Error())
		return
	}

	result, err := h.Engine.Process(c.Request.Context(), tenant, input.From, input.Text)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "engine error", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
