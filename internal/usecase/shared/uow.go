package shared

import (
	"context"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read committed transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction, retried on serialization failure
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	HoldingReservationsByItem(ctx context.Context, itemID uuid.UUID) ([]*ReservationRecord, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	// Create stores the reservation and claims each of its dates for the item.
	Create(ctx context.Context, res *reservation.Reservation) error
	LockByID(ctx context.Context, id uuid.UUID) (*ReservationRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, changedAt time.Time) error
	ReleaseDates(ctx context.Context, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, responseBodyHash string, reservationID uuid.UUID, now time.Time) error
	Delete(ctx context.Context, key, userID uuid.UUID) error
}
