package reservation

import (
	"errors"
	"fmt"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
)

var (
	ErrEmptySelection       = errors.New("no dates selected")
	ErrInvalidDateSelection = errors.New("invalid date selection")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
)

type DateRejection string

const (
	RejectPast               DateRejection = "past"
	RejectUnavailableWeekday DateRejection = "unavailable_weekday"
	RejectDuplicate          DateRejection = "duplicate"
)

// InvalidDateError names the first offending date of a selection.
type InvalidDateError struct {
	Date   calendar.Date
	Reason DateRejection
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date selection: %s (%s)", e.Date, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDateSelection
}

// Money is an amount in integer minor-currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// DateSet is a non-empty, duplicate-free, ascending list of dates.
type DateSet struct {
	dates []calendar.Date
}

func NewDateSet(dates []calendar.Date) (DateSet, error) {
	if len(dates) == 0 {
		return DateSet{}, ErrEmptySelection
	}
	sorted := calendar.SortDates(dates)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return DateSet{}, &InvalidDateError{Date: sorted[i], Reason: RejectDuplicate}
		}
	}
	return DateSet{dates: sorted}, nil
}

func (s DateSet) Len() int {
	return len(s.dates)
}

func (s DateSet) Dates() []calendar.Date {
	out := make([]calendar.Date, len(s.dates))
	copy(out, s.dates)
	return out
}

func (s DateSet) Strings() []string {
	return calendar.DateStrings(s.dates)
}

func (s DateSet) Contains(d calendar.Date) bool {
	for _, x := range s.dates {
		if x == d {
			return true
		}
	}
	return false
}

// Intersect returns the dates of s also present in other, ascending.
func (s DateSet) Intersect(other []calendar.Date) []calendar.Date {
	lookup := make(map[calendar.Date]struct{}, len(other))
	for _, d := range other {
		lookup[d] = struct{}{}
	}
	var out []calendar.Date
	for _, d := range s.dates {
		if _, ok := lookup[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
