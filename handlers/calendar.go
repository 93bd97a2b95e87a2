package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"dhara/models"
	"dhara/services/calendar"
	"dhara/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	Service  calendar.Service
	Defaults models.CalendarOptions
}

func NewCalendarHandler(svc calendar.Service, defaults models.CalendarOptions) *CalendarHandler {
	return &CalendarHandler{Service: svc, Defaults: defaults}
}

// GetCalendarHandler serves GET /api/professionals/:id/calendar.
func (h *CalendarHandler) GetCalendarHandler(c *gin.Context) {
	rng, opts, err := h.parseViewQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid calendar query", err.Error())
		return
	}

	view, err := h.Service.GetCalendar(c.Request.Context(), c.Param("id"), rng, opts)
	if err != nil {
		respondError(c, "Failed to build calendar", err)
		return
	}
	if len(view.Diagnostics) > 0 {
		getLogger(c).Info("Calendar built with skipped records", zap.Int("skipped", len(view.Diagnostics)))
	}
	c.JSON(http.StatusOK, view)
}

// ExportCalendarHandler serves GET /api/professionals/:id/calendar.ics.
func (h *CalendarHandler) ExportCalendarHandler(c *gin.Context) {
	rng, opts, err := h.parseViewQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid calendar query", err.Error())
		return
	}

	body, err := h.Service.ExportCalendar(c.Request.Context(), c.Param("id"), rng, opts)
	if err != nil {
		respondError(c, "Failed to export calendar", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Param("id")+".ics"))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *CalendarHandler) parseViewQuery(c *gin.Context) (models.VisibleRange, models.CalendarOptions, error) {
	var rng models.VisibleRange
	opts := h.Defaults

	startParam := c.Query("start")
	if startParam == "" {
		return rng, opts, fmt.Errorf("start is required (YYYY-MM-DD)")
	}
	start, err := calendar.ParseDate(startParam)
	if err != nil {
		return rng, opts, err
	}
	rng.Start = start
	if endParam := c.Query("end"); endParam != "" {
		end, err := calendar.ParseDate(endParam)
		if err != nil {
			return rng, opts, err
		}
		rng.End = end
	}
	rng.Granularity = models.Granularity(c.Query("granularity"))

	if opts.BusinessHourStart, err = intQuery(c, "businessHourStart", opts.BusinessHourStart); err != nil {
		return rng, opts, err
	}
	if opts.BusinessHourEnd, err = intQuery(c, "businessHourEnd", opts.BusinessHourEnd); err != nil {
		return rng, opts, err
	}
	// weekStartsOn is not overridable: stored dayOfWeek values are numbered from it.
	if err := calendar.ValidateOptions(opts); err != nil {
		return rng, opts, err
	}
	if _, err := calendar.ResolveRange(rng, opts); err != nil {
		return rng, opts, err
	}
	return rng, opts, nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
