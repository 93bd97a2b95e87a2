package calendar

import (
	"fmt"
	"time"

	"dhara/models"

	ical "github.com/arran4/golang-ical"
)

// ExportICS renders every contiguous run of available or booked cells in view
// as a VEVENT. generatedAt is used as DTSTAMP so output stays reproducible.
func ExportICS(view models.CalendarView, professionalID string, generatedAt time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Dhara//Availability Calendar//EN")

	cells := view.Cells
	for i := 0; i < len(cells); {
		c := cells[i]
		if c.State == models.CellEmpty {
			i++
			continue
		}
		j := i + 1
		for j < len(cells) && cells[j].Day == c.Day && cells[j].State == c.State &&
			cells[j].ColorTag == c.ColorTag && cells[j].Hour == cells[j-1].Hour+1 {
			j++
		}

		day, err := ParseDate(c.Day)
		if err != nil {
			return "", fmt.Errorf("export cell %s: %w", c.Day, err)
		}
		start := day.Add(time.Duration(c.Hour) * time.Hour)
		end := day.Add(time.Duration(cells[j-1].Hour+1) * time.Hour)

		ev := cal.AddEvent(fmt.Sprintf("%s-%s-%02d@dhara", professionalID, c.Day, c.Hour))
		ev.SetDtStampTime(generatedAt.UTC())
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		switch c.State {
		case models.CellBooked:
			ev.SetSummary("Booked")
		default:
			ev.SetSummary("Available")
			if c.ColorTag != "" {
				ev.SetDescription("color: " + string(c.ColorTag))
			}
		}
		i = j
	}
	return cal.Serialize(), nil
}
