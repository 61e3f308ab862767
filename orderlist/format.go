package orderlist

import (
	"fmt"
	"strings"
	"time"
)

const dateInputLayout = "2006-01-02"

// DateInput formats a picked date for the orders service query string.
func DateInput(t time.Time, zone *time.Location) string {
	return t.In(zone).Format(dateInputLayout)
}

// ParseDateInput reads a YYYY-MM-DD picker value as midnight in zone.
// An empty value means no date was picked.
func ParseDateInput(value string, zone *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateInputLayout, value, zone)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", value, err)
	}
	return &t, nil
}

// ConvertDateCreated renders an order timestamp as M/D/YYYY. Month and day
// are taken in UTC while the year is taken in zone, so around new year the
// two can disagree.
func ConvertDateCreated(t time.Time, zone *time.Location) string {
	utc := t.UTC()
	return fmt.Sprintf("%d/%d/%d", int(utc.Month()), utc.Day(), t.In(zone).Year())
}
