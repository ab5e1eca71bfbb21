//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/repository"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/builder"
	repositorymock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder().BuildDomain()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rent and dates inserted",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				mock.EXPECT().CreateRent(ctx, gomock.Any(), pgsql.CreateRentParams{
					ID:          res.ID(),
					ProductID:   res.ItemID(),
					UserID:      res.RenterID(),
					Dates:       []string{"2024-06-03", "2024-06-10"},
					Status:      "pending",
					TotalAmount: 5000,
					CreatedAt:   res.CreatedAt(),
					UpdatedAt:   res.UpdatedAt(),
				}).Return(nil)
				mock.EXPECT().InsertRentDates(ctx, gomock.Any(), res.ID(), res.ItemID(), []string{"2024-06-03", "2024-06-10"}).Return(int64(2), nil)
			},
		},
		{
			name: "error: date already held",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				mock.EXPECT().CreateRent(ctx, gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().InsertRentDates(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uq_rent_dates_product_date"})
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: rent insert fails",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				mock.EXPECT().CreateRent(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: dates insert fails",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries) {
				mock.EXPECT().CreateRent(ctx, gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().InsertRentDates(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			tc.setupMock(mockQueries)

			err := repository.NewReservationRepository(mockQueries, nil).Create(ctx, res)

			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind %s, got %v", tc.expectKind, err)
		})
	}
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestReservationRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: returns the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().GetRentForUpdate(ctx, gomock.Any(), id).Return(pgsql.Rent{ID: id, Status: "confirmed", Dates: []string{"2024-06-03"}}, nil)

		rec, err := repository.NewReservationRepository(mockQueries, nil).LockByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", rec.Status)
		assert.Nil(t, rec.StatusChangedAt)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().GetRentForUpdate(ctx, gomock.Any(), id).Return(pgsql.Rent{}, pgx.ErrNoRows)

		_, err := repository.NewReservationRepository(mockQueries, nil).LockByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	changedAt := time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC)
	params := pgsql.UpdateRentStatusParams{ID: id, From: "pending", To: "confirmed", ChangedAt: changedAt}

	testCases := []struct {
		name       string
		rows       int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: status swapped", rows: 1},
		{name: "error: status moved underneath", rows: 0, expectKind: infra.KindConflict},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockQueries.EXPECT().UpdateRentStatus(ctx, gomock.Any(), params).Return(tc.rows, tc.err)

			err := repository.NewReservationRepository(mockQueries, nil).
				UpdateStatus(ctx, id, reservation.StatusPending, reservation.StatusConfirmed, changedAt)

			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind %s, got %v", tc.expectKind, err)
		})
	}
}

func TestReservationRepository_ReleaseDates(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockQueries.EXPECT().DeleteRentDates(ctx, gomock.Any(), id).Return(int64(2), nil)

	require.NoError(t, repository.NewReservationRepository(mockQueries, nil).ReleaseDates(ctx, id))
}
