package readstore

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/pgconv"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db pgsql.DBTX, key, userID uuid.UUID) (pgsql.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	clock   clock.Clock
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, clock clock.Clock) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		clock:   clock,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx pgsql.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, key, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:                 row.Key,
		UserID:              row.UserID,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultReservationID: pgconv.UUIDPtrFromPgtype(row.ResultReservationID),
		ExpiresAt:           row.ExpiresAt.Time,
	}

	if r.clock.Now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
