package calendar

import (
	"fmt"
	"time"

	"dhara/models"
)

// MaxRangeDays bounds a resolved visible range. It fits any month snap of a
// single month and two months of exact dates.
const MaxRangeDays = 62

// ValidateOptions checks the business-hour window and week start.
func ValidateOptions(opts models.CalendarOptions) error {
	if opts.BusinessHourStart < 0 || opts.BusinessHourEnd > 24 || opts.BusinessHourStart >= opts.BusinessHourEnd {
		return fmt.Errorf("%w: business hours %d-%d", ErrInvalidOptions, opts.BusinessHourStart, opts.BusinessHourEnd)
	}
	if opts.WeekStartsOn < time.Sunday || opts.WeekStartsOn > time.Saturday {
		return fmt.Errorf("%w: weekStartsOn %d", ErrInvalidOptions, opts.WeekStartsOn)
	}
	return nil
}

// ResolveRange normalizes a visible range to whole UTC dates and snaps it to
// the requested granularity. A zero End means a single-day range. Ranges longer
// than MaxRangeDays after snapping are rejected.
func ResolveRange(rng models.VisibleRange, opts models.CalendarOptions) (models.VisibleRange, error) {
	if !rng.Granularity.Valid() {
		return models.VisibleRange{}, fmt.Errorf("%w: unknown granularity %q", ErrInvalidRange, rng.Granularity)
	}
	if rng.Start.IsZero() {
		return models.VisibleRange{}, fmt.Errorf("%w: missing start", ErrInvalidRange)
	}
	start := dateOnly(rng.Start)
	end := start
	if !rng.End.IsZero() {
		end = dateOnly(rng.End)
	}
	if end.Before(start) {
		return models.VisibleRange{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, FormatDate(end), FormatDate(start))
	}

	switch rng.Granularity {
	case models.GranularityWeek:
		back := (int(start.Weekday()) - int(opts.WeekStartsOn) + 7) % 7
		start = start.AddDate(0, 0, -back)
		forward := (int(opts.WeekStartsOn) + 6 - int(end.Weekday()) + 7) % 7
		end = end.AddDate(0, 0, forward)
	case models.GranularityMonth:
		start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(end.Year(), end.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}

	if end.After(start.AddDate(0, 0, MaxRangeDays-1)) {
		return models.VisibleRange{}, fmt.Errorf("%w: %s to %s spans more than %d days", ErrInvalidRange, FormatDate(start), FormatDate(end), MaxRangeDays)
	}
	return models.VisibleRange{Start: start, End: end, Granularity: rng.Granularity}, nil
}

// days lists every date in the resolved range, inclusive.
func days(rng models.VisibleRange) []time.Time {
	var out []time.Time
	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
