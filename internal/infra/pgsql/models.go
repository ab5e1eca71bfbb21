package pgsql

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID             uuid.UUID      `db:"id"`
	OwnerID        uuid.UUID      `db:"owner_id"`
	CategoryID     pgtype.UUID    `db:"category_id"`
	Name           string         `db:"name"`
	Price          pgtype.Numeric `db:"price"`
	Availabilities []string       `db:"availabilities"`
}

type Category struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type ProductImage struct {
	ID        uuid.UUID `db:"id"`
	ProductID uuid.UUID `db:"product_id"`
	ImageURL  string    `db:"image_url"`
}

type Rent struct {
	ID              uuid.UUID          `db:"id"`
	ProductID       uuid.UUID          `db:"product_id"`
	UserID          uuid.UUID          `db:"user_id"`
	Dates           []string           `db:"dates"`
	Status          string             `db:"status"`
	TotalAmount     int64              `db:"total_amount"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
	StatusChangedAt pgtype.Timestamptz `db:"status_changed_at"`
}

// RentView is a rent joined with its product.
type RentView struct {
	Rent
	ProductName string    `db:"product_name"`
	OwnerID     uuid.UUID `db:"owner_id"`
}

type IdempotencyKey struct {
	Key                 uuid.UUID          `db:"key"`
	UserID              uuid.UUID          `db:"user_id"`
	Endpoint            string             `db:"endpoint"`
	RequestHash         string             `db:"request_hash"`
	ResponseBodyHash    pgtype.Text        `db:"response_body_hash"`
	Status              string             `db:"status"`
	ResultReservationID pgtype.UUID        `db:"result_reservation_id"`
	ExpiresAt           pgtype.Timestamptz `db:"expires_at"`
	CreatedAt           time.Time          `db:"created_at"`
	UpdatedAt           time.Time          `db:"updated_at"`
}
