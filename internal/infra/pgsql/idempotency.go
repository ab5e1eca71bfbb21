package pgsql

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

// TryInsertIdempotencyKey reports whether this call created the row.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (bool, error) {
	b := dialect.Insert("idempotency_keys").
		Rows(goqu.Record{
			"key":          arg.Key,
			"user_id":      arg.UserID,
			"endpoint":     arg.Endpoint,
			"request_hash": arg.RequestHash,
			"status":       IdempotencyStatusProcessing,
			"expires_at":   arg.ExpiresAt,
		}).
		OnConflict(goqu.DoNothing()).
		Prepared(true)
	n, err := exec(ctx, db, b)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (IdempotencyKey, error) {
	b := dialect.From("idempotency_keys").
		Select("key", "user_id", "endpoint", "request_hash", "response_body_hash", "status",
			"result_reservation_id", "expires_at", "created_at", "updated_at").
		Where(goqu.C("key").Eq(key), goqu.C("user_id").Eq(userID)).
		Prepared(true)
	return collectOne[IdempotencyKey](ctx, db, b)
}

type CompleteIdempotencyKeyParams struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	ResponseBodyHash    string
	ResultReservationID uuid.UUID
	UpdatedAt           time.Time
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) (int64, error) {
	b := dialect.Update("idempotency_keys").
		Set(goqu.Record{
			"status":                IdempotencyStatusCompleted,
			"response_body_hash":    arg.ResponseBodyHash,
			"result_reservation_id": arg.ResultReservationID,
			"updated_at":            arg.UpdatedAt,
		}).
		Where(goqu.C("key").Eq(arg.Key), goqu.C("user_id").Eq(arg.UserID)).
		Prepared(true)
	return exec(ctx, db, b)
}

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	RequestHash string
	Now         time.Time
	ExpiresAt   time.Time
}

// ClaimExpiredIdempotencyKey recycles an expired row for a new request.
func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	b := dialect.Update("idempotency_keys").
		Set(goqu.Record{
			"status":                IdempotencyStatusProcessing,
			"request_hash":          arg.RequestHash,
			"response_body_hash":    nil,
			"result_reservation_id": nil,
			"expires_at":            arg.ExpiresAt,
			"updated_at":            arg.Now,
		}).
		Where(
			goqu.C("key").Eq(arg.Key),
			goqu.C("user_id").Eq(arg.UserID),
			goqu.C("expires_at").Lt(arg.Now),
		).
		Prepared(true)
	return exec(ctx, db, b)
}

func (q *Queries) DeleteIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (int64, error) {
	b := dialect.Delete("idempotency_keys").
		Where(goqu.C("key").Eq(key), goqu.C("user_id").Eq(userID)).
		Prepared(true)
	return exec(ctx, db, b)
}
