//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := calendar.ParseDate("2024-06-03")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 3, d.Day())
		assert.Equal(t, time.Monday, d.Weekday())
		assert.Equal(t, "2024-06-03", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, in := range []string{"", "2024-6-3", "03/06/2024", "2024-02-30", "2024-06-03T00:00:00Z"} {
			_, err := calendar.ParseDate(in)
			assert.ErrorIs(t, err, calendar.ErrInvalidDate, in)
		}
	})

	t.Run("date of time uses the time's own location", func(t *testing.T) {
		saoPaulo := time.FixedZone("BRT", -3*60*60)
		instant := time.Date(2024, time.June, 4, 1, 30, 0, 0, time.UTC)
		assert.Equal(t, "2024-06-04", calendar.DateOf(instant).String())
		assert.Equal(t, "2024-06-03", calendar.DateOf(instant.In(saoPaulo)).String())
	})

	t.Run("ordering and arithmetic", func(t *testing.T) {
		a := calendar.MustParseDate("2024-02-28")
		b := a.AddDays(1)
		assert.Equal(t, "2024-02-29", b.String())
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.Equal(t, 0, a.Compare(calendar.NewDate(2024, time.February, 28)))

		sorted := calendar.SortDates([]calendar.Date{b, a, calendar.MustParseDate("2023-12-31")})
		assert.Equal(t, []string{"2023-12-31", "2024-02-28", "2024-02-29"}, calendar.DateStrings(sorted))
	})

	t.Run("text marshalling", func(t *testing.T) {
		var d calendar.Date
		require.NoError(t, d.UnmarshalText([]byte("2024-06-10")))
		out, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", string(out))
		assert.Error(t, d.UnmarshalText([]byte("nope")))
	})
}

func TestMonth(t *testing.T) {
	testCases := []struct {
		name     string
		year     int
		month    time.Month
		wantDays int
		wantErr  bool
	}{
		{name: "leap february", year: 2024, month: time.February, wantDays: 29},
		{name: "common february", year: 2023, month: time.February, wantDays: 28},
		{name: "june", year: 2024, month: time.June, wantDays: 30},
		{name: "december", year: 2024, month: time.December, wantDays: 31},
		{name: "month zero", year: 2024, month: 0, wantErr: true},
		{name: "month thirteen", year: 2024, month: 13, wantErr: true},
		{name: "year zero", year: 0, month: time.January, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := calendar.NewMonth(tc.year, tc.month)
			if tc.wantErr {
				require.ErrorIs(t, err, calendar.ErrInvalidMonth)
				return
			}
			require.NoError(t, err)
			days := m.Days()
			require.Len(t, days, tc.wantDays)
			assert.Equal(t, m.First(), days[0])
			assert.Equal(t, m.Last(), days[len(days)-1])
			assert.True(t, m.Contains(days[0]))
			assert.False(t, m.Contains(m.Last().AddDays(1)))
		})
	}

	t.Run("navigation wraps years", func(t *testing.T) {
		dec, err := calendar.NewMonth(2024, time.December)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", dec.Next().First().String())
		assert.Equal(t, "2024-11-01", dec.Prev().First().String())
	})
}

func TestWeekdaySet(t *testing.T) {
	t.Run("empty set allows every day", func(t *testing.T) {
		var s calendar.WeekdaySet
		assert.True(t, s.IsEmpty())
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.True(t, s.Allows(d), d.String())
			assert.False(t, s.Contains(d), d.String())
		}
	})

	t.Run("non-empty set allows only members", func(t *testing.T) {
		s := calendar.NewWeekdaySet(time.Monday, time.Wednesday)
		assert.True(t, s.Allows(time.Monday))
		assert.True(t, s.Allows(time.Wednesday))
		assert.False(t, s.Allows(time.Tuesday))
		assert.False(t, s.Allows(time.Sunday))
		assert.True(t, s.AllowsDate(calendar.MustParseDate("2024-06-03")))
		assert.False(t, s.AllowsDate(calendar.MustParseDate("2024-06-04")))
	})

	t.Run("parse stored names", func(t *testing.T) {
		s, err := calendar.ParseWeekdaySet([]string{"monday", " Wednesday ", ""})
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, s.Weekdays())
		assert.Equal(t, []string{"monday", "wednesday"}, s.Names())
	})

	t.Run("parse nil is the empty set", func(t *testing.T) {
		s, err := calendar.ParseWeekdaySet(nil)
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := calendar.ParseWeekdaySet([]string{"monday", "funday"})
		assert.ErrorIs(t, err, calendar.ErrUnknownWeekday)
	})

	t.Run("out of range weekdays are ignored", func(t *testing.T) {
		s := calendar.NewWeekdaySet(time.Weekday(9), time.Friday)
		assert.Equal(t, []time.Weekday{time.Friday}, s.Weekdays())
	})
}
