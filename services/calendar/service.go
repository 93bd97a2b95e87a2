package calendar

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "dhara/database/repository/appointment"
	availabilityRepo "dhara/database/repository/availability"
	"dhara/models"

	"go.uber.org/zap"
)

// DefaultCalendarService is the Mongo/Redis backed Service.
type DefaultCalendarService struct {
	Slots        availabilityRepo.Repository
	Appointments appointmentRepo.Repository
	Cache        ViewCache // optional
	CacheTTL     time.Duration
	Metrics      *Metrics // optional
	Logger       *zap.Logger
	// WeekStartsOn is the numbering convention of stored dayOfWeek values,
	// used when slots are validated outside a calendar request.
	WeekStartsOn time.Weekday
	Now          func() time.Time
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultCalendarService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// GetCalendar returns the aggregated view for a professional, served from the
// cache when a fresh copy exists.
func (s *DefaultCalendarService) GetCalendar(
	ctx context.Context,
	professionalID string,
	rng models.VisibleRange,
	opts models.CalendarOptions,
) (*models.CalendarView, error) {
	logger := s.logger()
	started := s.now()

	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	resolved, err := ResolveRange(rng, opts)
	if err != nil {
		return nil, err
	}

	key := ViewCacheKey(professionalID, resolved, opts)
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn("GetCalendar: cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			s.Metrics.ObserveAggregation("cache_hit", 0, s.now().Sub(started).Seconds())
			return cached, nil
		}
	}

	slots, err := s.Slots.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.Metrics.ObserveAggregation("error", 0, s.now().Sub(started).Seconds())
		return nil, fmt.Errorf("load availability: %w", err)
	}
	appts, err := s.Appointments.ListByProfessionalInRange(ctx, professionalID, FormatDate(resolved.Start), FormatDate(resolved.End))
	if err != nil {
		s.Metrics.ObserveAggregation("error", 0, s.now().Sub(started).Seconds())
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	view, err := Aggregate(slots, appts, resolved, opts)
	if err != nil {
		s.Metrics.ObserveAggregation("error", 0, s.now().Sub(started).Seconds())
		return nil, err
	}
	for _, d := range view.Diagnostics {
		logger.Warn("GetCalendar: skipped malformed record",
			zap.String("professionalID", professionalID),
			zap.String("recordID", d.RecordID),
			zap.String("reason", d.Reason))
	}
	s.Metrics.ObserveAggregation("ok", len(view.Diagnostics), s.now().Sub(started).Seconds())

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, &view, s.CacheTTL); err != nil {
			logger.Warn("GetCalendar: cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return &view, nil
}

func (s *DefaultCalendarService) ExportCalendar(
	ctx context.Context,
	professionalID string,
	rng models.VisibleRange,
	opts models.CalendarOptions,
) (string, error) {
	view, err := s.GetCalendar(ctx, professionalID, rng, opts)
	if err != nil {
		return "", err
	}
	return ExportICS(*view, professionalID, s.now())
}

func (s *DefaultCalendarService) invalidate(ctx context.Context, professionalID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateProfessional(ctx, professionalID); err != nil {
		s.logger().Warn("cache invalidation failed", zap.String("professionalID", professionalID), zap.Error(err))
	}
}

// Lint reports every stored slot and appointment the aggregator would skip.
func (s *DefaultCalendarService) Lint(ctx context.Context, professionalID string) ([]models.Diagnostic, error) {
	slots, err := s.Slots.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	appts, err := s.Appointments.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	diags := []models.Diagnostic{}
	for i, slot := range slots {
		if bad := ValidateSlot(slot, recordID("slot", slot.ID, i), s.WeekStartsOn); bad != nil {
			diags = append(diags, models.Diagnostic{RecordID: bad.RecordID, Reason: bad.Reason})
		}
	}
	for i, appt := range appts {
		if bad := ValidateAppointment(appt, recordID("appointment", appt.ID, i)); bad != nil {
			diags = append(diags, models.Diagnostic{RecordID: bad.RecordID, Reason: bad.Reason})
		}
	}
	return diags, nil
}
