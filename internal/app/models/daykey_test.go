package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayKeyKind(t *testing.T) {
	t.Run("Weekday names are recognized regardless of case", func(t *testing.T) {
		assert.Equal(t, DayKeyWeekday, DayKey("Monday").Kind())
		assert.Equal(t, DayKeyWeekday, DayKey("monday").Kind())
		assert.Equal(t, DayKeyWeekday, DayKey("SUNDAY").Kind())
	})

	t.Run("ISO calendar dates are recognized", func(t *testing.T) {
		assert.Equal(t, DayKeyCalendarDate, DayKey("2025-03-14").Kind())
		assert.Equal(t, DayKeyCalendarDate, DayKey("2024-02-29").Kind())
	})

	t.Run("Malformed values are unknown", func(t *testing.T) {
		assert.Equal(t, DayKeyUnknown, DayKey("").Kind())
		assert.Equal(t, DayKeyUnknown, DayKey("Moonday").Kind())
		assert.Equal(t, DayKeyUnknown, DayKey("2025-13-01").Kind())
		assert.Equal(t, DayKeyUnknown, DayKey("2025-02-30").Kind())
		assert.Equal(t, DayKeyUnknown, DayKey("14-03-2025").Kind())
	})

	t.Run("IsValid follows Kind", func(t *testing.T) {
		assert.True(t, DayKey("friday").IsValid())
		assert.True(t, DayKey("2025-01-01").IsValid())
		assert.False(t, DayKey("someday").IsValid())
	})
}
