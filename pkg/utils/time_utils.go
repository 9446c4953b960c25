package utils

import (
	"strings"
	"time"
)

// planDateLayout is the calendar-date form itinerary entries carry.
const planDateLayout = "2006-01-02"

func FormatPlanDate(t time.Time) string {
	return t.Format(planDateLayout)
}

// ParsePlanDate accepts a bare calendar date or a full RFC 3339 timestamp,
// since clients send both.
func ParsePlanDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(planDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
