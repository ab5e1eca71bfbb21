//go:build unit || e2e

package builder

import (
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemName    string
	OwnerID     uuid.UUID
	RenterID    uuid.UUID
	Dates       []string
	Status      reservation.Status
	TotalAmount int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		ItemID:      uuid.New(),
		ItemName:    "Drill",
		OwnerID:     uuid.New(),
		RenterID:    uuid.New(),
		Dates:       []string{"2024-06-03", "2024-06-10"},
		Status:      reservation.StatusPending,
		TotalAmount: 5000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithItem(itemID, ownerID uuid.UUID) *ReservationBuilder {
	b.ItemID = itemID
	b.OwnerID = ownerID
	return b
}

func (b *ReservationBuilder) WithDates(dates ...string) *ReservationBuilder {
	b.Dates = dates
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	parsed := make([]calendar.Date, len(b.Dates))
	for i, s := range b.Dates {
		parsed[i] = calendar.MustParseDate(s)
	}
	set, err := reservation.NewDateSet(parsed)
	if err != nil {
		panic(err)
	}
	total, err := reservation.NewMoney(b.TotalAmount)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(b.ID, b.ItemID, b.RenterID, set, b.Status, total, b.CreatedAt, b.UpdatedAt, nil)
}

func (b *ReservationBuilder) BuildRecord() *shared.ReservationRecord {
	return &shared.ReservationRecord{
		ID:          b.ID,
		ItemID:      b.ItemID,
		RenterID:    b.RenterID,
		Dates:       append([]string(nil), b.Dates...),
		Status:      b.Status.String(),
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               b.ID,
		ItemID:           b.ItemID,
		ItemName:         b.ItemName,
		OwnerID:          b.OwnerID,
		RenterID:         b.RenterID,
		Dates:            append([]string(nil), b.Dates...),
		Status:           b.Status.String(),
		TotalAmountCents: b.TotalAmount,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildSummary() *queries.ReservationSummary {
	return &queries.ReservationSummary{
		ID:               b.ID,
		ItemID:           b.ItemID,
		RenterID:         b.RenterID,
		Dates:            append([]string(nil), b.Dates...),
		Status:           b.Status.String(),
		TotalAmountCents: b.TotalAmount,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
