package models

import "time"

// ColorTag is the rendering hint a professional attaches to an availability slot.
type ColorTag string

const (
	ColorGreen  ColorTag = "green"
	ColorYellow ColorTag = "yellow"
	ColorBlue   ColorTag = "blue"
)

// Valid reports whether c is one of the supported tags.
func (c ColorTag) Valid() bool {
	switch c {
	case ColorGreen, ColorYellow, ColorBlue:
		return true
	}
	return false
}

// AvailabilitySlot represents a window in which a professional can be booked.
type AvailabilitySlot struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`
	DayOfWeek      int       `bson:"day_of_week" json:"dayOfWeek"`   // 0-6, counted from the configured weekStartsOn
	StartTime      string    `bson:"start_time" json:"startTime"`    // "HH:MM"
	EndTime        string    `bson:"end_time" json:"endTime"`        // "HH:MM"
	Recurring      bool      `bson:"recurring" json:"recurring"`
	Date           string    `bson:"date,omitempty" json:"date,omitempty"`             // one-off slots only, "2006-01-02"
	ValidFrom      string    `bson:"valid_from,omitempty" json:"validFrom,omitempty"`   // recurring slots only
	ValidUntil     string    `bson:"valid_until,omitempty" json:"validUntil,omitempty"` // recurring slots only
	Label          string    `bson:"label,omitempty" json:"label,omitempty"`
	ColorTag       ColorTag  `bson:"color_tag" json:"colorTag"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// AvailabilitySlotInput is the payload accepted when creating or replacing a slot.
type AvailabilitySlotInput struct {
	DayOfWeek  *int     `json:"dayOfWeek" binding:"required,min=0,max=6"`
	StartTime  string   `json:"startTime" binding:"required"`
	EndTime    string   `json:"endTime" binding:"required"`
	Recurring  bool     `json:"recurring"`
	Date       string   `json:"date"`
	ValidFrom  string   `json:"validFrom"`
	ValidUntil string   `json:"validUntil"`
	Label      string   `json:"label"`
	ColorTag   ColorTag `json:"colorTag"`
}

// ToSlot copies the input onto a slot owned by professionalID.
func (in AvailabilitySlotInput) ToSlot(professionalID string) AvailabilitySlot {
	slot := AvailabilitySlot{
		ProfessionalID: professionalID,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Recurring:      in.Recurring,
		Date:           in.Date,
		ValidFrom:      in.ValidFrom,
		ValidUntil:     in.ValidUntil,
		Label:          in.Label,
		ColorTag:       in.ColorTag,
	}
	if in.DayOfWeek != nil {
		slot.DayOfWeek = *in.DayOfWeek
	}
	if slot.ColorTag == "" {
		slot.ColorTag = ColorGreen
	}
	return slot
}
