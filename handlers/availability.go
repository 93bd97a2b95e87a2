package handlers

import (
	"net/http"

	"dhara/models"
	"dhara/services/calendar"
	"dhara/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	Service calendar.Service
}

func NewAvailabilityHandler(svc calendar.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *AvailabilityHandler) CreateSlotHandler(c *gin.Context) {
	var req models.AvailabilitySlotInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to create availability slot", err)
		return
	}
	getLogger(c).Info("Availability slot created", zap.String("slotID", slot.ID))
	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

func (h *AvailabilityHandler) UpdateSlotHandler(c *gin.Context) {
	var req models.AvailabilitySlotInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	slot, err := h.Service.UpdateSlot(c.Request.Context(), c.Param("id"), c.Param("slotID"), req)
	if err != nil {
		respondError(c, "Failed to update availability slot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	slotID := c.Param("slotID")
	if err := h.Service.DeleteSlot(c.Request.Context(), c.Param("id"), slotID); err != nil {
		respondError(c, "Failed to delete availability slot", err)
		return
	}
	getLogger(c).Info("Availability slot deleted", zap.String("slotID", slotID))
	c.JSON(http.StatusOK, gin.H{"message": "Availability slot deleted successfully"})
}
