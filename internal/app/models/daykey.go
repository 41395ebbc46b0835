package models

import (
	"strings"
	"time"
)

// DayKey is one of the two day identifiers the platform produces: a weekday
// name ("Monday") published by the provider schedule-management flow, or an
// ISO calendar date ("2026-09-03") produced by the emergency booking path.
// A single Schedule must be homogeneous in its day-key kind.
type DayKey string

type DayKeyKind int

const (
	DayKeyUnknown DayKeyKind = iota
	DayKeyWeekday
	DayKeyCalendarDate
)

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

func (d DayKey) Kind() DayKeyKind {
	if weekdayNames[strings.ToLower(string(d))] {
		return DayKeyWeekday
	}
	if _, err := time.Parse("2006-01-02", string(d)); err == nil {
		return DayKeyCalendarDate
	}
	return DayKeyUnknown
}

func (d DayKey) IsValid() bool {
	return d.Kind() != DayKeyUnknown
}
