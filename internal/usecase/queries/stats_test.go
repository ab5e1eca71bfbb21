//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/builder"
	queriesmock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

type statsFixture struct {
	items        *queriesmock.MockItemReadStore
	catalog      *queriesmock.MockCatalogReadStore
	reservations *queriesmock.MockReservationReadStore
}

func newStatsFixture(t *testing.T) *statsFixture {
	ctrl := gomock.NewController(t)
	return &statsFixture{
		items:        queriesmock.NewMockItemReadStore(ctrl),
		catalog:      queriesmock.NewMockCatalogReadStore(ctrl),
		reservations: queriesmock.NewMockReservationReadStore(ctrl),
	}
}

func (f *statsFixture) queries(includeCancelled bool) queries.StatsQueries {
	cfg := config.NewTestConfig()
	cfg.Booking.EarningsIncludeCancelled = includeCancelled
	return queries.NewStatsQueries(f.items, f.catalog, f.reservations, cfg, noop.NewTracerProvider())
}

func summary(itemID uuid.UUID, status reservation.Status, cents int64) *queries.ReservationSummary {
	return builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) {
			b.ItemID = itemID
			b.TotalAmount = cents
		}).
		WithStatus(status).
		BuildSummary()
}

func TestStatsQueries_OwnerStats(t *testing.T) {
	ownerID := uuid.New()
	drill := builder.NewItemBuilder().WithOwner(ownerID)
	ladder := builder.NewItemBuilder().WithOwner(ownerID).With(func(b *builder.ItemBuilder) {
		b.Name = "Ladder"
		b.CategoryID = nil
	})

	setup := func(f *statsFixture) {
		f.items.EXPECT().FindByOwner(gomock.Any(), ownerID).Return([]*queries.ItemView{drill.BuildView(), ladder.BuildView()}, nil)
		f.catalog.EXPECT().CategoriesByIDs(gomock.Any(), []uuid.UUID{*drill.CategoryID}).
			Return([]*queries.CategoryView{{ID: *drill.CategoryID, Name: "Tools"}}, nil)
		f.catalog.EXPECT().ImagesByItemIDs(gomock.Any(), []uuid.UUID{drill.ID, ladder.ID}).
			Return([]*queries.ImageView{{ID: uuid.New(), ItemID: drill.ID, URL: "https://img/drill.jpg"}}, nil)
		f.reservations.EXPECT().FindByItemIDs(gomock.Any(), []uuid.UUID{drill.ID, ladder.ID}).
			Return([]*queries.ReservationSummary{
				summary(drill.ID, reservation.StatusPending, 5000),
				summary(drill.ID, reservation.StatusConfirmed, 2500),
				summary(drill.ID, reservation.StatusInProgress, 2500),
				summary(drill.ID, reservation.StatusCancelled, 1000),
				summary(ladder.ID, reservation.StatusCompleted, 3000),
			}, nil)
	}

	t.Run("folds batched reads per item", func(t *testing.T) {
		f := newStatsFixture(t)
		setup(f)

		got, err := f.queries(true).OwnerStats(context.Background(), ownerID)
		require.NoError(t, err)

		want := &queries.OwnerStatsView{
			OwnerID: ownerID,
			Items: []*queries.ItemStats{
				{
					ItemID:             drill.ID,
					Name:               "Drill",
					CategoryName:       "Tools",
					ImageURLs:          []string{"https://img/drill.jpg"},
					TotalReservations:  4,
					ActiveReservations: 2,
					TotalEarningsCents: 11000,
				},
				{
					ItemID:             ladder.ID,
					Name:               "Ladder",
					CategoryName:       queries.UnknownCategory,
					ImageURLs:          []string{},
					TotalReservations:  1,
					TotalEarningsCents: 3000,
				},
			},
			TotalItems:               2,
			TotalReservations:        5,
			ActiveReservations:       2,
			TotalEarningsCents:       14000,
			EarningsIncludeCancelled: true,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("OwnerStats mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cancelled reservations can be left out of earnings", func(t *testing.T) {
		f := newStatsFixture(t)
		setup(f)

		got, err := f.queries(false).OwnerStats(context.Background(), ownerID)
		require.NoError(t, err)

		assert.Equal(t, int64(10000), got.Items[0].TotalEarningsCents)
		assert.Equal(t, 4, got.Items[0].TotalReservations)
		assert.Equal(t, int64(13000), got.TotalEarningsCents)
		assert.False(t, got.EarningsIncludeCancelled)
	})

	t.Run("a broken reservation degrades only its item", func(t *testing.T) {
		f := newStatsFixture(t)
		f.items.EXPECT().FindByOwner(gomock.Any(), ownerID).Return([]*queries.ItemView{drill.BuildView(), ladder.BuildView()}, nil)
		f.catalog.EXPECT().CategoriesByIDs(gomock.Any(), gomock.Any()).
			Return([]*queries.CategoryView{{ID: *drill.CategoryID, Name: "Tools"}}, nil)
		f.catalog.EXPECT().ImagesByItemIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		broken := summary(drill.ID, reservation.StatusPending, 5000)
		broken.Status = "lost"
		f.reservations.EXPECT().FindByItemIDs(gomock.Any(), gomock.Any()).
			Return([]*queries.ReservationSummary{broken, summary(ladder.ID, reservation.StatusConfirmed, 3000)}, nil)

		got, err := f.queries(true).OwnerStats(context.Background(), ownerID)
		require.NoError(t, err)

		require.Len(t, got.Items, 2)
		assert.True(t, got.Items[0].Degraded)
		assert.Equal(t, queries.UnknownCategory, got.Items[0].CategoryName)
		assert.Zero(t, got.Items[0].TotalReservations)
		assert.False(t, got.Items[1].Degraded)
		assert.Equal(t, 1, got.ActiveReservations)
		assert.Equal(t, int64(3000), got.TotalEarningsCents)
	})

	t.Run("an undecodable item row degrades only that item", func(t *testing.T) {
		f := newStatsFixture(t)
		unreadable := drill.BuildView()
		unreadable.DecodeErr = errors.New("invalid numeric value")
		f.items.EXPECT().FindByOwner(gomock.Any(), ownerID).Return([]*queries.ItemView{unreadable, ladder.BuildView()}, nil)
		f.catalog.EXPECT().CategoriesByIDs(gomock.Any(), gomock.Any()).
			Return([]*queries.CategoryView{{ID: *drill.CategoryID, Name: "Tools"}}, nil)
		f.catalog.EXPECT().ImagesByItemIDs(gomock.Any(), gomock.Any()).
			Return([]*queries.ImageView{{ID: uuid.New(), ItemID: drill.ID, URL: "https://img/drill.jpg"}}, nil)
		f.reservations.EXPECT().FindByItemIDs(gomock.Any(), gomock.Any()).
			Return([]*queries.ReservationSummary{
				summary(drill.ID, reservation.StatusConfirmed, 5000),
				summary(ladder.ID, reservation.StatusConfirmed, 3000),
			}, nil)

		got, err := f.queries(true).OwnerStats(context.Background(), ownerID)
		require.NoError(t, err)

		want := []*queries.ItemStats{
			{
				ItemID:       drill.ID,
				Name:         "Drill",
				CategoryName: queries.UnknownCategory,
				ImageURLs:    []string{},
				Degraded:     true,
			},
			{
				ItemID:             ladder.ID,
				Name:               "Ladder",
				CategoryName:       queries.UnknownCategory,
				ImageURLs:          []string{},
				TotalReservations:  1,
				ActiveReservations: 1,
				TotalEarningsCents: 3000,
			},
		}
		if diff := cmp.Diff(want, got.Items); diff != "" {
			t.Errorf("item stats mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 2, got.TotalItems)
		assert.Equal(t, int64(3000), got.TotalEarningsCents)
	})

	t.Run("owner without items skips the batched reads", func(t *testing.T) {
		f := newStatsFixture(t)
		f.items.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(nil, nil)

		got, err := f.queries(true).OwnerStats(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Zero(t, got.TotalItems)
	})

	t.Run("batched read failure", func(t *testing.T) {
		f := newStatsFixture(t)
		f.items.EXPECT().FindByOwner(gomock.Any(), ownerID).Return([]*queries.ItemView{drill.BuildView()}, nil)
		f.catalog.EXPECT().CategoriesByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.catalog.EXPECT().ImagesByItemIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reservations.EXPECT().FindByItemIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := f.queries(true).OwnerStats(context.Background(), ownerID)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed), "got %v", err)
	})

	t.Run("anonymous owner", func(t *testing.T) {
		f := newStatsFixture(t)
		_, err := f.queries(true).OwnerStats(context.Background(), uuid.Nil)
		assert.True(t, errs.Is(err, errs.ErrRenterNotAuthenticated))
	})
}
