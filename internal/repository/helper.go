package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Note: mirrors validation.ParseDate; both are kept local to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// formatDate renders a nullable date for storage, nil stays NULL.
func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

// parseTimestamp parses a stored timestamp, covering the sqlite
// CURRENT_TIMESTAMP layout as well as RFC3339.
func parseTimestamp(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02 15:04:05", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// scanDate converts a nullable stored date back to *time.Time.
func scanDate(str *string) (*time.Time, error) {
	if str == nil || *str == "" {
		return nil, nil
	}
	t, err := ParseTime(*str)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
