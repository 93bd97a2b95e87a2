package handlers

import (
	"net/http"

	"dhara/models"
	"dhara/services/calendar"
	"dhara/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	Service calendar.Service
}

func NewAppointmentHandler(svc calendar.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ListAppointmentsHandler serves GET /api/professionals/:id/appointments?start=&end=.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing start date", "start is required (YYYY-MM-DD)")
		return
	}
	if end == "" {
		end = start
	}

	appts, err := h.Service.ListAppointments(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		respondError(c, "Failed to fetch appointments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var req models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appointmentID := c.Param("appointmentID")
	appt, err := h.Service.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), appointmentID, req.Status)
	if err != nil {
		respondError(c, "Failed to update appointment", err)
		return
	}
	getLogger(c).Info("Appointment status changed",
		zap.String("appointmentID", appointmentID),
		zap.String("status", string(appt.Status)))
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
