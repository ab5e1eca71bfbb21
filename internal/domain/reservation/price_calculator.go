package reservation

import "github.com/pedrovictoriano/circula-bem-sub000/internal/domain/item"

type PriceCalculator interface {
	CalculateTotal(it *item.Item, dates DateSet) Money
}

// DailyRateCalculator charges the item's rounded daily price once per date.
type DailyRateCalculator struct{}

func NewDailyRateCalculator() *DailyRateCalculator {
	return &DailyRateCalculator{}
}

func (DailyRateCalculator) CalculateTotal(it *item.Item, dates DateSet) Money {
	return Money{cents: it.PricePerDayCents()}.Times(dates.Len())
}
