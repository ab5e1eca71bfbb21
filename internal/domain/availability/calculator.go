package availability

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
)

type Classification string

const (
	Selectable                 Classification = "selectable"
	DisabledPast               Classification = "disabled_past"
	DisabledUnavailableWeekday Classification = "disabled_unavailable_weekday"
	DisabledBooked             Classification = "disabled_booked"
)

func (c Classification) IsSelectable() bool {
	return c == Selectable
}

type Day struct {
	Date           calendar.Date
	Classification Classification
}

// MonthView is the classified calendar of one item for one month.
type MonthView struct {
	month calendar.Month
	days  []Day
	index map[calendar.Date]Classification
}

func (v MonthView) Month() calendar.Month { return v.month }

func (v MonthView) Days() []Day {
	out := make([]Day, len(v.days))
	copy(out, v.days)
	return out
}

// Classify looks up d; ok is false when d is outside the month.
func (v MonthView) Classify(d calendar.Date) (Classification, bool) {
	c, ok := v.index[d]
	return c, ok
}

func (v MonthView) SelectableDates() []calendar.Date {
	var out []calendar.Date
	for _, d := range v.days {
		if d.Classification == Selectable {
			out = append(out, d.Date)
		}
	}
	return out
}

// Calculate classifies every date of month. Priority is past, then
// weekday, then booked. It has no side effects.
func Calculate(weekly calendar.WeekdaySet, booked []calendar.Date, today calendar.Date, month calendar.Month) MonthView {
	bookedSet := make(map[calendar.Date]struct{}, len(booked))
	for _, d := range booked {
		bookedSet[d] = struct{}{}
	}

	dates := month.Days()
	view := MonthView{
		month: month,
		days:  make([]Day, 0, len(dates)),
		index: make(map[calendar.Date]Classification, len(dates)),
	}
	for _, d := range dates {
		c := classify(d, weekly, bookedSet, today)
		view.days = append(view.days, Day{Date: d, Classification: c})
		view.index[d] = c
	}
	return view
}

func classify(d calendar.Date, weekly calendar.WeekdaySet, booked map[calendar.Date]struct{}, today calendar.Date) Classification {
	if d.Before(today) {
		return DisabledPast
	}
	if !weekly.Allows(d.Weekday()) {
		return DisabledUnavailableWeekday
	}
	if _, ok := booked[d]; ok {
		return DisabledBooked
	}
	return Selectable
}

// BookedWithin flattens the date lists of active reservations and keeps
// only the dates falling inside month.
func BookedWithin(month calendar.Month, dateLists ...[]calendar.Date) []calendar.Date {
	seen := make(map[calendar.Date]struct{})
	var out []calendar.Date
	for _, dates := range dateLists {
		for _, d := range dates {
			if !month.Contains(d) {
				continue
			}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	return calendar.SortDates(out)
}
