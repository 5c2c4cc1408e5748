package table

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format of date inputs.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseRangeStart returns the first instant of the given day in loc. An empty
// input yields a nil bound.
func ParseRangeStart(raw string, loc *time.Location) (*time.Time, error) {
	day, err := parseDay(raw, loc)
	if err != nil || day == nil {
		return nil, err
	}
	return day, nil
}

// ParseRangeEnd returns the last instant of the given day in loc, so a row
// dated any time that day is inside the range.
func ParseRangeEnd(raw string, loc *time.Location) (*time.Time, error) {
	day, err := parseDay(raw, loc)
	if err != nil || day == nil {
		return nil, err
	}
	end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &end, nil
}

func parseDay(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return &day, nil
}
