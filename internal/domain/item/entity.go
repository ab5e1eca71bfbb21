package item

import (
	"errors"
	"strings"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice = errors.New("price per day cannot be negative")
	ErrMissingOwner  = errors.New("item owner is required")
)

var centsPerUnit = decimal.NewFromInt(100)

type Item struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	categoryID   *uuid.UUID
	name         string
	pricePerDay  decimal.Decimal
	availability calendar.WeekdaySet
}

func NewItem(
	id, ownerID uuid.UUID,
	categoryID *uuid.UUID,
	name string,
	pricePerDay decimal.Decimal,
	availability calendar.WeekdaySet,
) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if pricePerDay.IsNegative() {
		return nil, ErrNegativePrice
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Item{
		id:           id,
		ownerID:      ownerID,
		categoryID:   categoryID,
		name:         strings.TrimSpace(name),
		pricePerDay:  pricePerDay,
		availability: availability,
	}, nil
}

// ReconstructItem rebuilds a stored item without re-running validation.
func ReconstructItem(
	id, ownerID uuid.UUID,
	categoryID *uuid.UUID,
	name string,
	pricePerDay decimal.Decimal,
	availability calendar.WeekdaySet,
) *Item {
	return &Item{
		id:           id,
		ownerID:      ownerID,
		categoryID:   categoryID,
		name:         name,
		pricePerDay:  pricePerDay,
		availability: availability,
	}
}

func (i *Item) ID() uuid.UUID                     { return i.id }
func (i *Item) OwnerID() uuid.UUID                { return i.ownerID }
func (i *Item) CategoryID() *uuid.UUID            { return i.categoryID }
func (i *Item) Name() string                      { return i.name }
func (i *Item) PricePerDay() decimal.Decimal      { return i.pricePerDay }
func (i *Item) Availability() calendar.WeekdaySet { return i.availability }

// PricePerDayCents is round(price * 100), half away from zero.
func (i *Item) PricePerDayCents() int64 {
	return PriceToCents(i.pricePerDay)
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && i.ownerID == userID
}

func (i *Item) AllowsDate(d calendar.Date) bool {
	return i.availability.AllowsDate(d)
}

func PriceToCents(price decimal.Decimal) int64 {
	return price.Mul(centsPerUnit).Round(0).IntPart()
}
