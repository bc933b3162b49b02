package slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/hauskeep/dispatch/internal/constants"
)

// Catalog is the ordered set of slot labels the board renders. It is static
// client configuration; the backend keys availability data by these labels.
type Catalog struct {
	labels []string
}

// NewCatalog validates the labels and returns a catalog preserving order.
func NewCatalog(labels []string) (Catalog, error) {
	if len(labels) == 0 {
		labels = constants.DefaultSlots
	}
	for _, label := range labels {
		if _, _, err := ParseLabel(label); err != nil {
			return Catalog{}, err
		}
	}
	return Catalog{labels: labels}, nil
}

// Default returns the built-in slot catalog.
func Default() Catalog {
	c, _ := NewCatalog(constants.DefaultSlots)
	return c
}

// Labels returns the slot labels in display order.
func (c Catalog) Labels() []string {
	return c.labels
}

// Len returns the number of slots in the catalog.
func (c Catalog) Len() int {
	return len(c.labels)
}

// At returns the label at index i.
func (c Catalog) At(i int) string {
	return c.labels[i]
}

// Contains reports whether label is part of the catalog.
func (c Catalog) Contains(label string) bool {
	for _, l := range c.labels {
		if l == label {
			return true
		}
	}
	return false
}

// ParseLabel splits a "HH:MM-HH:MM" slot label into start and end clock
// strings.
func ParseLabel(label string) (start, end string, err error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid slot label %q: expected HH:MM-HH:MM", label)
	}
	start, end = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if _, err := time.Parse(constants.ClockFormat, start); err != nil {
		return "", "", fmt.Errorf("invalid slot start in %q: %w", label, err)
	}
	if _, err := time.Parse(constants.ClockFormat, end); err != nil {
		return "", "", fmt.Errorf("invalid slot end in %q: %w", label, err)
	}
	return start, end, nil
}

// Bounds combines a date (YYYY-MM-DD) and a slot label into the start/end
// timestamps the booking API expects.
func Bounds(date, label string, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	startClock, endClock, err := ParseLabel(label)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = combine(d, startClock, loc)
	end = combine(d, endClock, loc)
	return start, end, nil
}

// BoundStrings is Bounds rendered in the wire timestamp format.
func BoundStrings(date, label string, loc *time.Location) (start, end string, err error) {
	s, e, err := Bounds(date, label, loc)
	if err != nil {
		return "", "", err
	}
	return s.Format(constants.TimestampFormat), e.Format(constants.TimestampFormat), nil
}

func combine(date time.Time, clock string, loc *time.Location) time.Time {
	t, _ := time.Parse(constants.ClockFormat, clock)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// LoadLocation loads an IANA timezone name, treating "" and "Local" as the
// system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}
