package routes

import (
	"net/http"
	"time"

	"dhara/handlers"
	"dhara/middleware"
	"dhara/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterProfessionalRoutes registers calendar, availability and appointment endpoints.
// Every route requires a signed token for the professional named in the path.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals/:id")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache), middleware.RequireSelf())

		api.GET("/calendar", hb.GetCalendarHandler)
		api.GET("/calendar.ics", hb.ExportCalendarHandler)

		api.GET("/availability", hb.ListSlotsHandler)
		api.POST("/availability", hb.CreateSlotHandler)
		api.PUT("/availability/:slotID", hb.UpdateSlotHandler)
		api.DELETE("/availability/:slotID", hb.DeleteSlotHandler)

		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.PATCH("/appointments/:appointmentID/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterAuthRoutes registers token management endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		api.DELETE("/token", hb.RevokeTokenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm Dhara"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfessionalRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
