//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/readstore"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/pgconv"
	readstoremock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestItemReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	categoryID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockItemReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: item found",
			setupMock: func(mock *readstoremock.MockItemReadQueries) {
				mock.EXPECT().GetProduct(ctx, gomock.Any(), itemID).Return(pgsql.Product{
					ID:             itemID,
					OwnerID:        uuid.New(),
					CategoryID:     pgtype.UUID{Bytes: categoryID, Valid: true},
					Name:           "Drill",
					Price:          pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true},
					Availabilities: []string{"Monday", "Friday"},
				}, nil)
			},
		},
		{
			name: "error: item not found",
			setupMock: func(mock *readstoremock.MockItemReadQueries) {
				mock.EXPECT().GetProduct(ctx, gomock.Any(), itemID).Return(pgsql.Product{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockItemReadQueries) {
				mock.EXPECT().GetProduct(ctx, gomock.Any(), itemID).Return(pgsql.Product{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: NULL price",
			setupMock: func(mock *readstoremock.MockItemReadQueries) {
				mock.EXPECT().GetProduct(ctx, gomock.Any(), itemID).Return(pgsql.Product{ID: itemID, OwnerID: uuid.New()}, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockItemReadQueries(ctrl)
			tc.setupMock(mockQueries)

			store := readstore.NewItemReadStore(mockQueries, nil)
			view, err := store.FindByID(ctx, itemID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind %s, got %v", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, itemID, view.ID)
			assert.Equal(t, &categoryID, view.CategoryID)
			assert.True(t, decimal.RequireFromString("12.345").Equal(view.Price))
			assert.Equal(t, []string{"Monday", "Friday"}, view.Availabilities)
		})
	}
}

func TestItemReadStore_FindByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success: converts every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockItemReadQueries(ctrl)
		mockQueries.EXPECT().ListProductsByOwner(ctx, gomock.Any(), ownerID).Return([]pgsql.Product{
			{ID: uuid.New(), OwnerID: ownerID, Name: "Drill", Price: pgtype.Numeric{Int: big.NewInt(25), Valid: true}},
			{ID: uuid.New(), OwnerID: ownerID, Name: "Ladder", Price: pgtype.Numeric{Int: big.NewInt(10), Valid: true}},
		}, nil)

		views, err := readstore.NewItemReadStore(mockQueries, nil).FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Nil(t, views[0].CategoryID)
		assert.Equal(t, "Ladder", views[1].Name)
	})

	t.Run("success: an unreadable row is flagged and the rest still convert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockItemReadQueries(ctrl)
		brokenID, categoryID := uuid.New(), uuid.New()
		mockQueries.EXPECT().ListProductsByOwner(ctx, gomock.Any(), ownerID).Return([]pgsql.Product{
			{ID: uuid.New(), OwnerID: ownerID, Name: "Drill", Price: pgtype.Numeric{Int: big.NewInt(25), Valid: true}},
			{ID: brokenID, OwnerID: ownerID, Name: "Ladder", CategoryID: pgtype.UUID{Bytes: categoryID, Valid: true}, Price: pgtype.Numeric{NaN: true, Valid: true}},
			{ID: uuid.New(), OwnerID: ownerID, Name: "Saw", Price: pgtype.Numeric{Int: big.NewInt(7), Valid: true}},
		}, nil)

		views, err := readstore.NewItemReadStore(mockQueries, nil).FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.NoError(t, views[0].DecodeErr)
		assert.NoError(t, views[2].DecodeErr)
		assert.Equal(t, "Saw", views[2].Name)

		broken := views[1]
		require.Error(t, broken.DecodeErr)
		assert.ErrorIs(t, broken.DecodeErr, pgconv.ErrInvalidNumericValue)
		assert.Equal(t, brokenID, broken.ID)
		assert.Equal(t, "Ladder", broken.Name)
		assert.Equal(t, &categoryID, broken.CategoryID)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockItemReadQueries(ctrl)
		mockQueries.EXPECT().ListProductsByOwner(ctx, gomock.Any(), ownerID).Return(nil, errDBConnectionLost)

		_, err := readstore.NewItemReadStore(mockQueries, nil).FindByOwner(ctx, ownerID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, errDBConnectionLost)
	})
}
