//go:build unit || e2e

package builder

import (
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/item"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	PricePerDay decimal.Decimal
	Weekdays    []time.Weekday
}

// NewItemBuilder defaults to a drill offered on Mondays and Wednesdays
// at 25.00 per day.
func NewItemBuilder() *ItemBuilder {
	categoryID := uuid.New()
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		CategoryID:  &categoryID,
		Name:        "Drill",
		PricePerDay: decimal.RequireFromString("25.00"),
		Weekdays:    []time.Weekday{time.Monday, time.Wednesday},
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithPrice(price string) *ItemBuilder {
	b.PricePerDay = decimal.RequireFromString(price)
	return b
}

func (b *ItemBuilder) WithWeekdays(days ...time.Weekday) *ItemBuilder {
	b.Weekdays = days
	return b
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.ID, b.OwnerID, b.CategoryID, b.Name, b.PricePerDay, calendar.NewWeekdaySet(b.Weekdays...))
}

func (b *ItemBuilder) MustBuildDomain() *item.Item {
	it, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return it
}

func (b *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		CategoryID:     b.CategoryID,
		Name:           b.Name,
		Price:          b.PricePerDay,
		Availabilities: calendar.NewWeekdaySet(b.Weekdays...).Names(),
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		CategoryID:     b.CategoryID,
		Name:           b.Name,
		Price:          b.PricePerDay,
		Availabilities: calendar.NewWeekdaySet(b.Weekdays...).Names(),
	}
}
