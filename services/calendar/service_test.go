package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "dhara/database/repository/appointment"
	availabilityRepo "dhara/database/repository/availability"
	"dhara/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultCalendarService, *fakeSlotRepo, *fakeAppointmentRepo, *memoryViewCache) {
	slots := &fakeSlotRepo{slots: []models.AvailabilitySlot{
		{ID: "s1", ProfessionalID: "prof-1", DayOfWeek: 0, StartTime: "08:00", EndTime: "08:45", Recurring: true, ColorTag: models.ColorYellow},
		{ID: "bad", ProfessionalID: "prof-1", DayOfWeek: 2, StartTime: "12:00", EndTime: "11:00", Recurring: true},
		{ID: "s-other", ProfessionalID: "prof-2", DayOfWeek: 0, StartTime: "08:00", EndTime: "18:00", Recurring: true},
	}}
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProfessionalID: "prof-1", Date: "2024-01-15", StartTime: "08:00", EndTime: "09:00", Status: models.StatusConfirmed},
		{ID: "a-late", ProfessionalID: "prof-1", Date: "2024-03-01", StartTime: "08:00", EndTime: "09:00", Status: models.StatusConfirmed},
	}}
	cache := newMemoryViewCache()
	svc := &DefaultCalendarService{
		Slots:        slots,
		Appointments: appts,
		Cache:        cache,
		CacheTTL:     time.Minute,
		WeekStartsOn: time.Monday,
		Now:          func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) },
	}
	return svc, slots, appts, cache
}

func TestGetCalendar(t *testing.T) {
	svc, _, _, _ := newTestService()

	view, err := svc.GetCalendar(context.Background(), "prof-1", weekOf(monday), weekOpts())
	require.NoError(t, err)

	assert.Equal(t, models.OccupancyStats{TotalAvailableHours: 1, TotalBookedHours: 1, OccupancyRate: 100}, view.Stats)
	require.Len(t, view.Diagnostics, 1)
	assert.Equal(t, "bad", view.Diagnostics[0].RecordID)
}

func TestGetCalendar_UsesCache(t *testing.T) {
	svc, slots, _, cache := newTestService()
	ctx := context.Background()

	first, err := svc.GetCalendar(ctx, "prof-1", weekOf(monday), weekOpts())
	require.NoError(t, err)
	second, err := svc.GetCalendar(ctx, "prof-1", weekOf(monday.AddDate(0, 0, 3)), weekOpts())
	require.NoError(t, err)

	assert.Equal(t, 1, slots.listCalls)
	assert.Equal(t, first, second)
	assert.Len(t, cache.views, 1)
}

func TestGetCalendar_Errors(t *testing.T) {
	svc, slots, appts, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetCalendar(ctx, "prof-1", models.VisibleRange{Start: monday, End: monday.AddDate(0, 0, -2)}, weekOpts())
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.GetCalendar(ctx, "prof-1", weekOf(monday), models.CalendarOptions{BusinessHourStart: 10, BusinessHourEnd: 9})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	boom := errors.New("connection reset")
	appts.err = boom
	_, err = svc.GetCalendar(ctx, "prof-1", weekOf(monday), weekOpts())
	assert.ErrorIs(t, err, boom)

	slots.err = boom
	_, err = svc.GetCalendar(ctx, "prof-1", weekOf(monday), weekOpts())
	assert.ErrorIs(t, err, boom)
}

func TestGetCalendar_RecordsMetrics(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.Metrics = NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	_, err := svc.GetCalendar(ctx, "prof-1", weekOf(monday), weekOpts())
	require.NoError(t, err)
	_, err = svc.GetCalendar(ctx, "prof-1", weekOf(monday), weekOpts())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Metrics.aggregations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Metrics.aggregations.WithLabelValues("cache_hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Metrics.diagnostics))
}

func TestExportCalendar(t *testing.T) {
	svc, _, _, _ := newTestService()

	out, err := svc.ExportCalendar(context.Background(), "prof-1", weekOf(monday), weekOpts())
	require.NoError(t, err)
	assert.Contains(t, out, "SUMMARY:Booked")
	assert.Contains(t, out, "DTSTAMP:20240110T090000Z")
}

func TestCreateSlot(t *testing.T) {
	svc, slots, _, cache := newTestService()
	ctx := context.Background()
	dow := 3

	created, err := svc.CreateSlot(ctx, "prof-1", models.AvailabilitySlotInput{DayOfWeek: &dow, StartTime: "09:00", EndTime: "10:00", Recurring: true})
	require.NoError(t, err)
	assert.Equal(t, "prof-1", created.ProfessionalID)
	assert.Equal(t, models.ColorGreen, created.ColorTag)
	assert.Len(t, slots.slots, 4)
	assert.Equal(t, []string{"prof-1"}, cache.invalidated)

	_, err = svc.CreateSlot(ctx, "prof-1", models.AvailabilitySlotInput{DayOfWeek: &dow, StartTime: "10:00", EndTime: "09:00"})
	var bad *MalformedRecordError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "new slot", bad.RecordID)
	assert.Len(t, slots.slots, 4)
}

func TestUpdateSlot(t *testing.T) {
	svc, slots, _, cache := newTestService()
	ctx := context.Background()
	dow := 1

	updated, err := svc.UpdateSlot(ctx, "prof-1", "s1", models.AvailabilitySlotInput{DayOfWeek: &dow, StartTime: "07:00", EndTime: "09:00", Recurring: true, ColorTag: models.ColorBlue})
	require.NoError(t, err)
	assert.Equal(t, "s1", updated.ID)
	assert.Equal(t, "07:00", slots.slots[0].StartTime)
	assert.Equal(t, models.ColorBlue, slots.slots[0].ColorTag)
	assert.Equal(t, []string{"prof-1"}, cache.invalidated)

	_, err = svc.UpdateSlot(ctx, "prof-2", "s1", models.AvailabilitySlotInput{DayOfWeek: &dow, StartTime: "07:00", EndTime: "09:00"})
	assert.ErrorIs(t, err, availabilityRepo.ErrNotFound)

	_, err = svc.UpdateSlot(ctx, "prof-1", "s1", models.AvailabilitySlotInput{DayOfWeek: &dow, StartTime: "07:00", EndTime: "09:00", ColorTag: "red"})
	var bad *MalformedRecordError
	assert.ErrorAs(t, err, &bad)
}

func TestDeleteSlot(t *testing.T) {
	svc, slots, _, cache := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.DeleteSlot(ctx, "prof-1", "s1"))
	assert.Len(t, slots.slots, 2)
	assert.Equal(t, []string{"prof-1"}, cache.invalidated)

	assert.ErrorIs(t, svc.DeleteSlot(ctx, "prof-1", "s1"), availabilityRepo.ErrNotFound)
}

func TestListAppointments(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	appts, err := svc.ListAppointments(ctx, "prof-1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "a1", appts[0].ID)

	_, err = svc.ListAppointments(ctx, "prof-1", "2024-01-31", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = svc.ListAppointments(ctx, "prof-1", "January", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	svc, _, appts, cache := newTestService()
	ctx := context.Background()

	updated, err := svc.UpdateAppointmentStatus(ctx, "prof-1", "a1", models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, models.StatusCancelled, appts.appts[0].Status)
	assert.Equal(t, []string{"prof-1"}, cache.invalidated)

	view, err := svc.GetCalendar(ctx, "prof-1", weekOf(monday), weekOpts())
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.Stats.TotalBookedHours)

	_, err = svc.UpdateAppointmentStatus(ctx, "prof-1", "a1", "done")
	var bad *MalformedRecordError
	assert.ErrorAs(t, err, &bad)

	_, err = svc.UpdateAppointmentStatus(ctx, "prof-1", "missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, appointmentRepo.ErrNotFound)
}

func TestLint(t *testing.T) {
	svc, _, appts, _ := newTestService()
	appts.appts = append(appts.appts, models.Appointment{ProfessionalID: "prof-1", Date: "2024-01-16", StartTime: "9", EndTime: "10:00", Status: models.StatusPending})

	diags, err := svc.Lint(context.Background(), "prof-1")
	require.NoError(t, err)
	require.Len(t, diags, 2)
	assert.Equal(t, "bad", diags[0].RecordID)
	assert.Equal(t, "appointment[2]", diags[1].RecordID)
}

func TestCreateSlot_OneOffDateUsesWeekStart(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()
	mon, tue := 0, 1

	_, err := svc.CreateSlot(ctx, "prof-1", models.AvailabilitySlotInput{DayOfWeek: &mon, StartTime: "09:00", EndTime: "10:00", Date: "2024-01-15"})
	require.NoError(t, err)

	_, err = svc.CreateSlot(ctx, "prof-1", models.AvailabilitySlotInput{DayOfWeek: &tue, StartTime: "09:00", EndTime: "10:00", Date: "2024-01-15"})
	var bad *MalformedRecordError
	assert.ErrorAs(t, err, &bad)
}

func TestGetCalendar_RejectsLongRange(t *testing.T) {
	svc, slots, _, _ := newTestService()

	_, err := svc.GetCalendar(context.Background(), "prof-1", models.VisibleRange{Start: date("0001-01-01"), End: date("9999-12-31")}, weekOpts())
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Zero(t, slots.listCalls)
}
