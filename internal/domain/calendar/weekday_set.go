package calendar

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownWeekday = errors.New("unknown weekday name")

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WeekdaySet is the recurring weekly availability of an item.
// The zero value is the empty set, which allows every day.
type WeekdaySet struct {
	mask uint8
}

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		if d >= time.Sunday && d <= time.Saturday {
			s.mask |= 1 << uint(d)
		}
	}
	return s
}

// ParseWeekdaySet reads the stored lowercase names ("monday", ...).
// Blank entries are skipped; anything else unknown is an error.
func ParseWeekdaySet(names []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		d, ok := weekdayByName[name]
		if !ok {
			return WeekdaySet{}, errors.Join(ErrUnknownWeekday, errors.New(raw))
		}
		s.mask |= 1 << uint(d)
	}
	return s, nil
}

func (s WeekdaySet) IsEmpty() bool {
	return s.mask == 0
}

// Contains is strict membership, ignoring the empty-means-always rule.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s.mask&(1<<uint(d)) != 0
}

// Allows reports whether an item with this set may be rented on d.
func (s WeekdaySet) Allows(d time.Weekday) bool {
	return s.IsEmpty() || s.Contains(d)
}

func (s WeekdaySet) AllowsDate(d Date) bool {
	return s.Allows(d.Weekday())
}

func (s WeekdaySet) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// Names renders the set in the stored lowercase form, Sunday first.
func (s WeekdaySet) Names() []string {
	days := s.Weekdays()
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = strings.ToLower(d.String())
	}
	return out
}
