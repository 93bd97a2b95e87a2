package calendar

import (
	"fmt"
	"time"

	"dhara/models"
)

// ValidateSlot applies the same rules the aggregator uses to decide whether a
// slot can be placed on the grid. dayOfWeek is counted from weekStartsOn.
func ValidateSlot(slot models.AvailabilitySlot, recordID string, weekStartsOn time.Weekday) *MalformedRecordError {
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return malformed(recordID, "dayOfWeek %d is out of range", slot.DayOfWeek)
	}
	if _, _, err := window(slot.StartTime, slot.EndTime); err != nil {
		return malformed(recordID, "%v", err)
	}
	if slot.ColorTag != "" && !slot.ColorTag.Valid() {
		return malformed(recordID, "unknown colorTag %q", slot.ColorTag)
	}
	if !slot.Recurring && slot.Date != "" {
		d, err := ParseDate(slot.Date)
		if err != nil {
			return malformed(recordID, "%v", err)
		}
		if want := SlotWeekday(slot.DayOfWeek, weekStartsOn); d.Weekday() != want {
			return malformed(recordID, "date %s is a %s, dayOfWeek %d is a %s", slot.Date, d.Weekday(), slot.DayOfWeek, want)
		}
	}
	if slot.Recurring && slot.ValidFrom != "" && slot.ValidUntil != "" {
		vf, err := ParseDate(slot.ValidFrom)
		if err != nil {
			return malformed(recordID, "validFrom: %v", err)
		}
		vu, err := ParseDate(slot.ValidUntil)
		if err != nil {
			return malformed(recordID, "validUntil: %v", err)
		}
		if vu.Before(vf) {
			return malformed(recordID, "validUntil %s is before validFrom %s", slot.ValidUntil, slot.ValidFrom)
		}
	}
	return nil
}

// ValidateAppointment checks an appointment's date, time window and status.
func ValidateAppointment(appt models.Appointment, recordID string) *MalformedRecordError {
	if _, err := ParseDate(appt.Date); err != nil {
		return malformed(recordID, "%v", err)
	}
	if _, _, err := window(appt.StartTime, appt.EndTime); err != nil {
		return malformed(recordID, "%v", err)
	}
	if !appt.Status.Valid() {
		return malformed(recordID, "unknown status %q", appt.Status)
	}
	return nil
}

func recordID(kind, id string, index int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s[%d]", kind, index)
}
