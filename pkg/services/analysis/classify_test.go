package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekend(t *testing.T) {
	assert.False(t, isWeekend(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)))  // Monday
	assert.False(t, isWeekend(time.Date(2025, 6, 6, 23, 59, 0, 0, time.UTC))) // Friday night
	assert.True(t, isWeekend(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)))    // Saturday
	assert.True(t, isWeekend(time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)))   // Sunday
}

func TestHourOfDay(t *testing.T) {
	assert.Equal(t, 0, hourOfDay(time.Date(2025, 6, 2, 0, 30, 0, 0, time.UTC)))
	assert.Equal(t, 23, hourOfDay(time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)))
}

func TestCalendarDate(t *testing.T) {
	morning := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, calendarDate(morning), calendarDate(night))
	assert.NotEqual(t, calendarDate(night), calendarDate(nextDay))
}
