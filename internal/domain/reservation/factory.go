package reservation

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/item"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation builds a pending reservation after checking that the
// selection is non-empty, free of duplicates, not in the past and on days
// the item is offered. Conflicts with other bookings are the caller's job.
func (f *Factory) CreateReservation(it *item.Item, renterID uuid.UUID, dates []calendar.Date) (*Reservation, error) {
	if renterID == uuid.Nil {
		return nil, ErrMissingRenter
	}

	set, err := NewDateSet(dates)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	today := calendar.DateOf(now)
	for _, d := range set.dates {
		if d.Before(today) {
			return nil, &InvalidDateError{Date: d, Reason: RejectPast}
		}
		if !it.AllowsDate(d) {
			return nil, &InvalidDateError{Date: d, Reason: RejectUnavailableWeekday}
		}
	}

	return &Reservation{
		id:        uuid.New(),
		itemID:    it.ID(),
		renterID:  renterID,
		dates:     set,
		status:    StatusPending,
		total:     f.PriceCalculator.CalculateTotal(it, set),
		createdAt: now,
		updatedAt: now,
	}, nil
}
