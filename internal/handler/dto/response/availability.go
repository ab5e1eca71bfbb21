package response

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayResponse struct {
	Date           string `json:"date"`
	Classification string `json:"classification"`
}

type AvailabilityResponse struct {
	ItemID           uuid.UUID     `json:"itemId"`
	Year             int           `json:"year"`
	Month            int           `json:"month"`
	PricePerDayCents int64         `json:"pricePerDayCents"`
	Days             []DayResponse `json:"days"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	days := make([]DayResponse, len(v.Days))
	for i, d := range v.Days {
		days[i] = DayResponse{Date: d.Date, Classification: d.Classification}
	}
	return &AvailabilityResponse{
		ItemID:           v.ItemID,
		Year:             v.Year,
		Month:            v.Month,
		PricePerDayCents: v.PricePerDayCents,
		Days:             days,
	}
}
