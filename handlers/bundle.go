// File: dhara/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthCache *redis.Client

	// Calendar endpoints
	GetCalendarHandler    gin.HandlerFunc
	ExportCalendarHandler gin.HandlerFunc

	// Availability endpoints
	ListSlotsHandler  gin.HandlerFunc
	CreateSlotHandler gin.HandlerFunc
	UpdateSlotHandler gin.HandlerFunc
	DeleteSlotHandler gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler        gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Auth endpoints
	RevokeTokenHandler gin.HandlerFunc
}
