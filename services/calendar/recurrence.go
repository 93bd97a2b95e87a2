package calendar

import (
	"fmt"
	"time"

	"dhara/models"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// SlotWeekday converts a dayOfWeek counted from weekStartsOn into a time.Weekday.
// With weekStartsOn Monday, 0 is Monday; with Sunday, 0 is Sunday.
func SlotWeekday(dayOfWeek int, weekStartsOn time.Weekday) time.Weekday {
	return time.Weekday((int(weekStartsOn) + dayOfWeek) % 7)
}

// ExpandSlotDates returns the dates within [from, to] on which slot applies.
//
// A one-off slot with a date applies to that date only. A recurring slot repeats
// weekly on its weekday, clipped to validFrom/validUntil when set. A one-off slot
// without a date applies to its weekday inside the window.
func ExpandSlotDates(slot models.AvailabilitySlot, from, to time.Time, weekStartsOn time.Weekday) ([]time.Time, error) {
	from, to = dateOnly(from), dateOnly(to)
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return nil, fmt.Errorf("dayOfWeek %d is out of range", slot.DayOfWeek)
	}

	if !slot.Recurring && slot.Date != "" {
		d, err := ParseDate(slot.Date)
		if err != nil {
			return nil, err
		}
		if d.Before(from) || d.After(to) {
			return nil, nil
		}
		return []time.Time{d}, nil
	}

	if slot.Recurring {
		if slot.ValidFrom != "" {
			vf, err := ParseDate(slot.ValidFrom)
			if err != nil {
				return nil, fmt.Errorf("validFrom: %w", err)
			}
			if vf.After(from) {
				from = vf
			}
		}
		if slot.ValidUntil != "" {
			vu, err := ParseDate(slot.ValidUntil)
			if err != nil {
				return nil, fmt.Errorf("validUntil: %w", err)
			}
			if vu.Before(to) {
				to = vu
			}
		}
	}
	if to.Before(from) {
		return nil, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Dtstart:   from,
		Until:     to,
		Byweekday: []rrule.Weekday{rruleWeekdays[SlotWeekday(slot.DayOfWeek, weekStartsOn)]},
	})
	if err != nil {
		return nil, fmt.Errorf("build weekly rule: %w", err)
	}
	return r.All(), nil
}
