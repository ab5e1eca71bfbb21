package calendar

import (
	"errors"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month")

type Month struct {
	year  int
	month time.Month
}

func NewMonth(year int, month time.Month) (Month, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return Month{}, ErrInvalidMonth
	}
	return Month{year: year, month: month}, nil
}

func MonthOf(d Date) Month {
	return Month{year: d.Year(), month: d.Month()}
}

func (m Month) Year() int         { return m.year }
func (m Month) Month() time.Month { return m.month }

func (m Month) First() Date {
	return NewDate(m.year, m.month, 1)
}

// Last relies on day 0 of the next month normalizing to the final day.
func (m Month) Last() Date {
	return NewDate(m.year, m.month+1, 0)
}

func (m Month) Contains(d Date) bool {
	return d.Year() == m.year && d.Month() == m.month
}

// Days lists every date of the month in order.
func (m Month) Days() []Date {
	last := m.Last().Day()
	days := make([]Date, 0, last)
	for day := 1; day <= last; day++ {
		days = append(days, Date{year: m.year, month: m.month, day: day})
	}
	return days
}

func (m Month) Next() Month {
	return MonthOf(NewDate(m.year, m.month+1, 1))
}

func (m Month) Prev() Month {
	return MonthOf(NewDate(m.year, m.month-1, 1))
}
