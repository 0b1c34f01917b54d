package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 25, 30, 500, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), DateOf(ts))
}

func TestWeekStart(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	// Inclusive 7-day window: June 9 through June 15
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), WeekStart(asOf))

	t.Run("crosses month boundary", func(t *testing.T) {
		asOf := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), WeekStart(asOf))
	})
}

func TestMonthStart(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), MonthStart(asOf))

	t.Run("first of month is its own start", func(t *testing.T) {
		asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, asOf, MonthStart(asOf))
	})
}
