// Package slotlabel parses availability slot labels of the form
// "10:00 AM - 11:00 AM" and resolves them against a calendar date.
package slotlabel

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	timeLayout = "3:04 PM"
)

var (
	ErrBadDate  = errors.New("slotlabel: date must be in 2006-01-02 form")
	ErrBadLabel = errors.New("slotlabel: label must start with a clock time like \"10:00 AM\"")
)

// Resolve combines a calendar date with the start time carried by a slot
// label into a single timestamp in UTC. The label's start time is the
// portion before the first " - " separator; anything after it is ignored.
func Resolve(date, label string) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, date)
	}

	start := label
	if idx := strings.Index(label, " - "); idx >= 0 {
		start = label[:idx]
	}
	start = strings.TrimSpace(start)

	clock, err := time.Parse(timeLayout, start)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		time.UTC,
	), nil
}
