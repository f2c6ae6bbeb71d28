package routes

import (
	"net/http"
	"time"

	"turnero/handlers"
	"turnero/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterWebhookRoutes sets up the inbound channel endpoint. Replies go back
// as channel XML, so this group stays outside the JSON error middleware.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhooks")
	{
		api.POST("/channel/:tenant", hb.Webhook.HandleInbound)
	}
}

// RegisterChatRoutes sets up the JSON chat simulator endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.Chat.HandleChat)
	}
}

// RegisterAdminRoutes sets up endpoints for tenant operators.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		// Protected routes (Require Authentication)
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/tenants/:slug", hb.Admin.GetTenant)
		adminGroup.PUT("/tenants/:slug/services", hb.Admin.UpdateTenantServices)
		adminGroup.GET("/tenants/:slug/appointments", hb.Admin.ListAppointments)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWebhookRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
