package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of the read-side views.

type ItemSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	CategoryID     *uuid.UUID
	Name           string
	Price          decimal.Decimal
	Availabilities []string
}

type ReservationRecord struct {
	ID              uuid.UUID
	ItemID          uuid.UUID
	RenterID        uuid.UUID
	Dates           []string
	Status          string
	TotalAmount     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StatusChangedAt *time.Time
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)
