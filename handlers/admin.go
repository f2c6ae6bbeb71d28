package handlers

import (
	"net/http"
	"time"

	"turnero/config"
	appointmentRepo "turnero/database/repository/appointment"
	tenantRepo "turnero/database/repository/tenant"
	"turnero/models"
	"turnero/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes the minimal tenant-configuration surface: login,
// tenant catalog read/update and the appointment list.
type AdminHandler struct {
	Tenants      tenantRepo.TenantRepository
	Appointments appointmentRepo.AppointmentRepository
}

func NewAdminHandler(tenants tenantRepo.TenantRepository, appointments appointmentRepo.AppointmentRepository) *AdminHandler {
	return &AdminHandler{Tenants: tenants, Appointments: appointments}
}

// Login checks the operator password against the configured bcrypt hash and
// issues a short-lived admin token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "admin login disabled", "no password configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken("admin", 12*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) GetTenant(c *gin.Context) {
	tenant, err := h.Tenants.GetBySlug(c.Param("slug"))
	if err == tenantRepo.ErrNotFound {
		utils.JSONError(c, http.StatusNotFound, "tenant not found", c.Param("slug"))
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tenant", err.Error())
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *AdminHandler) UpdateTenantServices(c *gin.Context) {
	var input struct {
		Services []models.Service `json:"services" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Tenants.UpdateServices(c.Param("slug"), input.Services); err != nil {
		if err == tenantRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "tenant not found", c.Param("slug"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	tenant, err := h.Tenants.GetBySlug(c.Param("slug"))
	if err == tenantRepo.ErrNotFound {
		utils.JSONError(c, http.StatusNotFound, "tenant not found", c.Param("slug"))
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tenant", err.Error())
		return
	}

	appts, err := h.Appointments.ListByTenant(tenant.ID, 100)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
