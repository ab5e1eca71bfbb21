//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := decimal.RequireFromString("25.50")
		out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
		require.NoError(t, err)
		assert.True(t, in.Equal(out))
	})

	t.Run("scaled integer", func(t *testing.T) {
		out, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "12.345", out.String())
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, n := range []pgtype.Numeric{
			{Valid: false},
			{NaN: true, Valid: true},
			{Int: big.NewInt(1), InfinityModifier: pgtype.Infinity, Valid: true},
		} {
			_, err := pgconv.DecimalFromNumeric(n)
			assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
		}
	})
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, *pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(now)))

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
}
