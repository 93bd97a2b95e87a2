package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:45", want: 525},
		{in: "23:59", want: 1439},
		{in: "24:00", want: 1440},
		{in: "8:00", wantErr: true},
		{in: "08-00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "24:30", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestCoversHour(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		hour       int
		want       bool
	}{
		{"partial hour", 480, 525, 8, true},
		{"ends on boundary", 480, 540, 9, false},
		{"starts mid hour", 510, 600, 8, true},
		{"before hour", 360, 420, 8, false},
		{"spans hour", 420, 600, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coversHour(tt.start, tt.end, tt.hour))
		})
	}
}
