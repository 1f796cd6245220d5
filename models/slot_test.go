package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSlot(t *testing.T, start, end string) Slot {
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return Slot{Start: s, End: e}
}

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"morning", "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z", "09:00 AM - 09:30 AM"},
		{"noon crossing", "2025-09-01T11:45:00Z", "2025-09-01T12:15:00Z", "11:45 AM - 12:15 PM"},
		{"afternoon", "2025-09-01T14:00:00Z", "2025-09-01T14:30:00Z", "02:00 PM - 02:30 PM"},
		{"midnight", "2025-09-01T00:00:00Z", "2025-09-01T00:30:00Z", "12:00 AM - 12:30 AM"},
		{"non-utc input rendered in utc", "2025-09-01T09:00:00+02:00", "2025-09-01T09:30:00+02:00", "07:00 AM - 07:30 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlot(t, tt.start, tt.end).Label())
		})
	}
}

func TestSlotValid(t *testing.T) {
	assert.True(t, parseSlot(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z").Valid())
	assert.False(t, parseSlot(t, "2025-09-01T09:30:00Z", "2025-09-01T09:00:00Z").Valid())

	same := parseSlot(t, "2025-09-01T09:00:00Z", "2025-09-01T09:00:00Z")
	assert.False(t, same.Valid(), "zero-length slot violates start < end")
}

func TestSlotEqualIsByValue(t *testing.T) {
	a := parseSlot(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z")
	b := parseSlot(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z")
	c := parseSlot(t, "2025-09-01T11:00:00+02:00", "2025-09-01T11:30:00+02:00")

	assert.True(t, a.Equal(b))
	// Same instants in a different zone still compare equal.
	assert.True(t, a.Equal(c))
	assert.False(t, a.Equal(parseSlot(t, "2025-09-01T09:30:00Z", "2025-09-01T10:00:00Z")))
}
