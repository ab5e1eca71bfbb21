package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemView struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	CategoryID     *uuid.UUID      `json:"category_id,omitempty"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Availabilities []string        `json:"availabilities"`
	// DecodeErr is set on list reads when the row could not be fully
	// converted; only the identifying fields are then populated.
	DecodeErr error `json:"-"`
}

type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ImageView struct {
	ID     uuid.UUID `json:"id"`
	ItemID uuid.UUID `json:"item_id"`
	URL    string    `json:"url"`
}

// ReservationView is a reservation with the item columns needed to
// decide visibility.
type ReservationView struct {
	ID               uuid.UUID  `json:"id"`
	ItemID           uuid.UUID  `json:"item_id"`
	ItemName         string     `json:"item_name"`
	OwnerID          uuid.UUID  `json:"owner_id"`
	RenterID         uuid.UUID  `json:"renter_id"`
	Dates            []string   `json:"dates"`
	Status           string     `json:"status"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	StatusChangedAt  *time.Time `json:"status_changed_at,omitempty"`
}

// ReservationSummary is the slim row used for availability and stats.
type ReservationSummary struct {
	ID               uuid.UUID
	ItemID           uuid.UUID
	RenterID         uuid.UUID
	Dates            []string
	Status           string
	TotalAmountCents int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	StatusChangedAt  *time.Time
}

type DayView struct {
	Date           string `json:"date"`
	Classification string `json:"classification"`
}

type AvailabilityView struct {
	ItemID           uuid.UUID `json:"item_id"`
	Year             int       `json:"year"`
	Month            int       `json:"month"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Days             []DayView `json:"days"`
}

type ItemStats struct {
	ItemID             uuid.UUID `json:"item_id"`
	Name               string    `json:"name"`
	CategoryName       string    `json:"category_name"`
	ImageURLs          []string  `json:"image_urls"`
	TotalReservations  int       `json:"total_reservations"`
	ActiveReservations int       `json:"active_reservations"`
	TotalEarningsCents int64     `json:"total_earnings_cents"`
	Degraded           bool      `json:"degraded"`
}

type OwnerStatsView struct {
	OwnerID                  uuid.UUID    `json:"owner_id"`
	Items                    []*ItemStats `json:"items"`
	TotalItems               int          `json:"total_items"`
	TotalReservations        int          `json:"total_reservations"`
	ActiveReservations       int          `json:"active_reservations"`
	TotalEarningsCents       int64        `json:"total_earnings_cents"`
	EarningsIncludeCancelled bool         `json:"earnings_include_cancelled"`
}
