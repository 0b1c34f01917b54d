package service

import (
	"time"
)

// DateOf truncates t to its calendar day, dropping the time component
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the first day of the inclusive 7-day window ending at asOf
func WeekStart(asOf time.Time) time.Time {
	return DateOf(asOf).AddDate(0, 0, -6)
}

// MonthStart returns the first calendar day of asOf's month
func MonthStart(asOf time.Time) time.Time {
	return time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
}
