//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/availability"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/builder"
	queriesmock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustMonth(t *testing.T, year int, month time.Month) calendar.Month {
	t.Helper()
	m, err := calendar.NewMonth(year, month)
	require.NoError(t, err)
	return m
}

func TestAvailabilityQueries_MonthAvailability(t *testing.T) {
	// Thursday 5 September 2024.
	clk := clock.NewMockClock(time.Date(2024, time.September, 5, 10, 0, 0, 0, time.UTC))
	it := builder.NewItemBuilder().WithWeekdays(time.Monday, time.Friday).WithPrice("12.345")

	t.Run("classifies each day of the month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		items.EXPECT().FindByID(gomock.Any(), it.ID).Return(it.BuildView(), nil)
		held := builder.NewReservationBuilder().
			WithItem(it.ID, it.OwnerID).
			WithDates("2024-08-30", "2024-09-09").
			WithStatus(reservation.StatusConfirmed).
			BuildSummary()
		store.EXPECT().FindHoldingByItem(gomock.Any(), it.ID).Return([]*queries.ReservationSummary{held}, nil)

		got, err := queries.NewAvailabilityQueries(items, store, clk).
			MonthAvailability(context.Background(), it.ID, mustMonth(t, 2024, time.September))
		require.NoError(t, err)

		assert.Equal(t, 2024, got.Year)
		assert.Equal(t, 9, got.Month)
		assert.Equal(t, int64(1235), got.PricePerDayCents)
		require.Len(t, got.Days, 30)

		byDate := make(map[string]string, len(got.Days))
		for _, d := range got.Days {
			byDate[d.Date] = d.Classification
		}
		assert.Equal(t, string(availability.DisabledPast), byDate["2024-09-02"])
		assert.Equal(t, string(availability.DisabledUnavailableWeekday), byDate["2024-09-05"])
		assert.Equal(t, string(availability.Selectable), byDate["2024-09-06"])
		assert.Equal(t, string(availability.DisabledBooked), byDate["2024-09-09"])
		assert.Equal(t, string(availability.Selectable), byDate["2024-09-13"])
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		items.EXPECT().FindByID(gomock.Any(), it.ID).Return(nil, notFound())

		_, err := queries.NewAvailabilityQueries(items, queriesmock.NewMockReservationReadStore(ctrl), clk).
			MonthAvailability(context.Background(), it.ID, mustMonth(t, 2024, time.September))
		assert.True(t, errs.Is(err, errs.ErrItemNotFound), "got %v", err)
	})

	t.Run("corrupt stored date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		items.EXPECT().FindByID(gomock.Any(), it.ID).Return(it.BuildView(), nil)
		bad := builder.NewReservationBuilder().WithDates("09/09/2024").BuildSummary()
		store.EXPECT().FindHoldingByItem(gomock.Any(), it.ID).Return([]*queries.ReservationSummary{bad}, nil)

		_, err := queries.NewAvailabilityQueries(items, store, clk).
			MonthAvailability(context.Background(), it.ID, mustMonth(t, 2024, time.September))
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed), "got %v", err)
	})
}

func TestAvailabilityQueries_Session(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, time.September, 5, 10, 0, 0, 0, time.UTC))
	it := builder.NewItemBuilder().WithWeekdays(time.Monday)
	september := mustMonth(t, 2024, time.September)

	ctrl := gomock.NewController(t)
	items := queriesmock.NewMockItemReadStore(ctrl)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	items.EXPECT().FindByID(gomock.Any(), it.ID).Return(it.BuildView(), nil).Times(2)
	first := store.EXPECT().FindHoldingByItem(gomock.Any(), it.ID).Return(nil, nil)
	taken := builder.NewReservationBuilder().WithItem(it.ID, it.OwnerID).WithDates("2024-09-16").BuildSummary()
	store.EXPECT().FindHoldingByItem(gomock.Any(), it.ID).Return([]*queries.ReservationSummary{taken}, nil).After(first)

	q := queries.NewAvailabilityQueries(items, store, clk)
	session, err := q.OpenSession(context.Background(), it.ID, september)
	require.NoError(t, err)

	assert.True(t, session.Toggle(calendar.MustParseDate("2024-09-09")).Accepted)
	assert.True(t, session.Toggle(calendar.MustParseDate("2024-09-16")).Accepted)
	assert.False(t, session.Toggle(calendar.MustParseDate("2024-09-10")).Accepted)
	assert.Equal(t, int64(5000), session.Total())

	dropped, err := q.RefreshSession(context.Background(), session, september)
	require.NoError(t, err)
	assert.Equal(t, []calendar.Date{calendar.MustParseDate("2024-09-16")}, dropped)
	assert.Equal(t, []calendar.Date{calendar.MustParseDate("2024-09-09")}, session.Selected())
}
