package calendar

import (
	"math"

	"dhara/models"
)

// Aggregate overlays appointments on availability slots for the visible range
// and returns the calendar cells with occupancy statistics.
//
// Aggregate is pure: identical inputs always yield identical output. Records
// that cannot be placed are skipped and reported in CalendarView.Diagnostics.
// Only an unusable range or options fail the whole call.
func Aggregate(
	slots []models.AvailabilitySlot,
	appointments []models.Appointment,
	rng models.VisibleRange,
	opts models.CalendarOptions,
) (models.CalendarView, error) {
	if err := ValidateOptions(opts); err != nil {
		return models.CalendarView{}, err
	}
	resolved, err := ResolveRange(rng, opts)
	if err != nil {
		return models.CalendarView{}, err
	}

	dates := days(resolved)
	hours := opts.BusinessHourEnd - opts.BusinessHourStart
	cells := make([]models.CalendarCell, 0, len(dates)*hours)
	dayIndex := make(map[string]int, len(dates))
	for i, d := range dates {
		day := FormatDate(d)
		dayIndex[day] = i
		for h := opts.BusinessHourStart; h < opts.BusinessHourEnd; h++ {
			cells = append(cells, models.CalendarCell{Day: day, Hour: h, State: models.CellEmpty})
		}
	}
	cellAt := func(di, h int) *models.CalendarCell {
		return &cells[di*hours+(h-opts.BusinessHourStart)]
	}

	diagnostics := []models.Diagnostic{}
	report := func(e *MalformedRecordError) {
		diagnostics = append(diagnostics, models.Diagnostic{RecordID: e.RecordID, Reason: e.Reason})
	}

	// Availability: OR over every slot, color and source from the first match.
	for i, slot := range slots {
		id := recordID("slot", slot.ID, i)
		if bad := ValidateSlot(slot, id, opts.WeekStartsOn); bad != nil {
			report(bad)
			continue
		}
		start, end, _ := window(slot.StartTime, slot.EndTime)
		occurrences, err := ExpandSlotDates(slot, resolved.Start, resolved.End, opts.WeekStartsOn)
		if err != nil {
			report(malformed(id, "%v", err))
			continue
		}
		for _, d := range occurrences {
			di, ok := dayIndex[FormatDate(d)]
			if !ok {
				continue
			}
			for h := opts.BusinessHourStart; h < opts.BusinessHourEnd; h++ {
				if !coversHour(start, end, h) {
					continue
				}
				cell := cellAt(di, h)
				if cell.DeclaredAvailable {
					continue
				}
				cell.DeclaredAvailable = true
				cell.State = models.CellAvailable
				cell.ColorTag = slot.ColorTag
				cell.SourceSlotID = slot.ID
			}
		}
	}

	// Appointments override availability unless cancelled.
	for i, appt := range appointments {
		id := recordID("appointment", appt.ID, i)
		if bad := ValidateAppointment(appt, id); bad != nil {
			report(bad)
			continue
		}
		if appt.Status == models.StatusCancelled {
			continue
		}
		di, ok := dayIndex[appt.Date]
		if !ok {
			continue
		}
		start, end, _ := window(appt.StartTime, appt.EndTime)
		for h := opts.BusinessHourStart; h < opts.BusinessHourEnd; h++ {
			if !coversHour(start, end, h) {
				continue
			}
			cell := cellAt(di, h)
			cell.State = models.CellBooked
			if cell.SourceAppointmentID == "" {
				cell.SourceAppointmentID = appt.ID
			}
		}
	}

	return models.CalendarView{
		Range:       resolved,
		Cells:       cells,
		Stats:       occupancy(cells),
		Diagnostics: diagnostics,
	}, nil
}

func occupancy(cells []models.CalendarCell) models.OccupancyStats {
	var available, booked int
	for _, c := range cells {
		if c.DeclaredAvailable {
			available++
		}
		if c.State == models.CellBooked {
			booked++
		}
	}
	stats := models.OccupancyStats{
		TotalAvailableHours: float64(available),
		TotalBookedHours:    float64(booked),
	}
	if available > 0 {
		// Hours booked without declared availability can push the ratio past 100.
		rate := math.Round(float64(booked)/float64(available)*1000) / 10
		stats.OccupancyRate = math.Min(rate, 100)
	}
	return stats
}
