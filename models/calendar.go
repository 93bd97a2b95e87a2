package models

import "time"

// CellState is the display state of one calendar cell.
type CellState string

const (
	CellEmpty     CellState = "empty"
	CellAvailable CellState = "available"
	CellBooked    CellState = "booked"
)

// Granularity selects how a visible range is snapped before cells are built.
type Granularity string

const (
	GranularityNone  Granularity = ""
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityNone, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// VisibleRange is the inclusive date window a calendar view covers.
type VisibleRange struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Granularity Granularity `json:"granularity,omitempty"`
}

// CalendarOptions carries the caller-supplied grid configuration.
type CalendarOptions struct {
	BusinessHourStart int          `json:"businessHourStart"` // first hour rendered, 0-23
	BusinessHourEnd   int          `json:"businessHourEnd"`   // exclusive, 1-24
	WeekStartsOn      time.Weekday `json:"weekStartsOn"` // first day of a week and dayOfWeek 0
}

// CalendarCell is one (day, hour) unit of the grid. Rebuilt on every aggregation.
type CalendarCell struct {
	Day                 string    `json:"day"` // "2006-01-02"
	Hour                int       `json:"hour"`
	State               CellState `json:"state"`
	ColorTag            ColorTag  `json:"colorTag,omitempty"`
	SourceSlotID        string    `json:"sourceSlotId,omitempty"`
	SourceAppointmentID string    `json:"sourceAppointmentId,omitempty"`
	DeclaredAvailable   bool      `json:"declaredAvailable"`
}

// OccupancyStats summarizes a calendar view.
type OccupancyStats struct {
	TotalAvailableHours float64 `json:"totalAvailableHours"`
	TotalBookedHours    float64 `json:"totalBookedHours"`
	OccupancyRate       float64 `json:"occupancyRate"`
}

// Diagnostic reports a record skipped during aggregation.
type Diagnostic struct {
	RecordID string `json:"recordId"`
	Reason   string `json:"reason"`
}

// CalendarView is the display-ready result of one aggregation pass.
type CalendarView struct {
	Range       VisibleRange   `json:"range"`
	Cells       []CalendarCell `json:"cells"`
	Stats       OccupancyStats `json:"stats"`
	Diagnostics []Diagnostic   `json:"diagnostics"`
}
