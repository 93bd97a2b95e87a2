package cron

import (
	"context"
	"time"

	appointmentRepo "dhara/database/repository/appointment"
	"dhara/models"
	"dhara/services/calendar"

	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OccupancyJob recomputes the current week's occupancy for every professional
// with appointments in that week and publishes it as a gauge.
type OccupancyJob struct {
	Calendar     calendar.Service
	Appointments appointmentRepo.Repository
	Metrics      *calendar.Metrics
	Options      models.CalendarOptions
	Logger       *zap.Logger
	Now          func() time.Time
}

// Run performs one snapshot pass. Per-professional failures are logged and skipped.
func (j *OccupancyJob) Run(ctx context.Context) int {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	logger := j.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := calendar.ValidateOptions(j.Options); err != nil {
		logger.Error("[OccupancyJob] invalid calendar options", zap.Error(err))
		return 0
	}
	week, err := calendar.ResolveRange(models.VisibleRange{Start: now(), Granularity: models.GranularityWeek}, j.Options)
	if err != nil {
		logger.Error("[OccupancyJob] cannot resolve current week", zap.Error(err))
		return 0
	}

	ids, err := j.Appointments.DistinctProfessionalIDs(ctx, calendar.FormatDate(week.Start), calendar.FormatDate(week.End))
	if err != nil {
		logger.Error("[OccupancyJob] failed to list professionals", zap.Error(err))
		return 0
	}

	done := 0
	for _, id := range ids {
		view, err := j.Calendar.GetCalendar(ctx, id, week, j.Options)
		if err != nil {
			logger.Warn("[OccupancyJob] snapshot failed", zap.String("professionalID", id), zap.Error(err))
			continue
		}
		j.Metrics.SetOccupancy(id, view.Stats.OccupancyRate)
		done++
	}
	logger.Info("[OccupancyJob] snapshot complete", zap.Int("professionals", done))
	return done
}

// StartOccupancyJob schedules the job on spec and returns the running scheduler.
// Callers stop it with Stop() on shutdown.
func StartOccupancyJob(ctx context.Context, spec string, job *OccupancyJob) (*robfig.Cron, error) {
	c := robfig.New()
	if _, err := c.AddFunc(spec, func() {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		job.Run(runCtx)
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
