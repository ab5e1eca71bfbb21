package repository

import (
	"context"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgsql.DBTX, arg pgsql.TryInsertIdempotencyKeyParams) (bool, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db pgsql.DBTX, arg pgsql.ClaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db pgsql.DBTX, arg pgsql.CompleteIdempotencyKeyParams) (int64, error)
	DeleteIdempotencyKey(ctx context.Context, db pgsql.DBTX, key, userID uuid.UUID) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      pgsql.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db pgsql.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := pgsql.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, r.db, pgsql.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		Now:         now,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID, now time.Time) error {
	params := pgsql.CompleteIdempotencyKeyParams{
		Key:                 key,
		UserID:              userID,
		ResponseBodyHash:    responseBodyHash,
		ResultReservationID: resultReservationID,
		UpdatedAt:           now,
	}

	n, err := r.queries.CompleteIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key vanished before completion", nil, infra.KindNotFound)
	}

	return nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, key, userID uuid.UUID) error {
	if _, err := r.queries.DeleteIdempotencyKey(ctx, r.db, key, userID); err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}
