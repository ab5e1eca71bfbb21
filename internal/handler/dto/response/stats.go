package response

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemStatsResponse struct {
	ItemID             uuid.UUID `json:"itemId"`
	Name               string    `json:"name"`
	CategoryName       string    `json:"categoryName"`
	ImageURLs          []string  `json:"imageUrls"`
	TotalReservations  int       `json:"totalReservations"`
	ActiveReservations int       `json:"activeReservations"`
	TotalEarningsCents int64     `json:"totalEarningsCents"`
	Degraded           bool      `json:"degraded,omitempty"`
}

type OwnerStatsResponse struct {
	OwnerID                  uuid.UUID            `json:"ownerId"`
	Items                    []*ItemStatsResponse `json:"items"`
	TotalItems               int                  `json:"totalItems"`
	TotalReservations        int                  `json:"totalReservations"`
	ActiveReservations       int                  `json:"activeReservations"`
	TotalEarningsCents       int64                `json:"totalEarningsCents"`
	EarningsIncludeCancelled bool                 `json:"earningsIncludeCancelled"`
}

func FromOwnerStatsView(v *queries.OwnerStatsView) (*OwnerStatsResponse, error) {
	resp := OwnerStatsResponse{Items: []*ItemStatsResponse{}}
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []*ItemStatsResponse{}
	}
	return &resp, nil
}
