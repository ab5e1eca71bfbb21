//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: infra.KindDBFailure},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows updated"), kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("operation failed", tc.err, tc.kind...)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.want))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}

	t.Run("pg error stays reachable", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "rent_dates_product_id_date_key"}
		err := infra.WrapRepoErr("insert failed", pgErr)

		var target *pgconn.PgError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "rent_dates_product_id_date_key", infra.ConstraintName(err))
	})
}
