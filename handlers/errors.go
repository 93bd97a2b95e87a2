package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "dhara/database/repository/appointment"
	availabilityRepo "dhara/database/repository/availability"
	"dhara/services/calendar"
	"dhara/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, message string, err error) {
	var bad *calendar.MalformedRecordError
	switch {
	case errors.Is(err, calendar.ErrInvalidRange), errors.Is(err, calendar.ErrInvalidOptions):
		utils.JSONError(c, http.StatusBadRequest, message, err.Error())
	case errors.As(err, &bad):
		utils.JSONError(c, http.StatusUnprocessableEntity, message, bad.Reason)
	case errors.Is(err, availabilityRepo.ErrNotFound), errors.Is(err, appointmentRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
