package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when a visible range ends before it starts
	// or carries an unknown granularity.
	ErrInvalidRange = errors.New("invalid visible range")
	// ErrInvalidOptions is returned for an unusable business-hour window or week start.
	ErrInvalidOptions = errors.New("invalid calendar options")
)

// MalformedRecordError describes a slot or appointment that cannot be placed on the grid.
type MalformedRecordError struct {
	RecordID string
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: %s", e.RecordID, e.Reason)
}

func malformed(recordID, format string, args ...any) *MalformedRecordError {
	return &MalformedRecordError{RecordID: recordID, Reason: fmt.Sprintf(format, args...)}
}
