package response

import (
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID               uuid.UUID  `json:"id"`
	ItemID           uuid.UUID  `json:"itemId"`
	ItemName         string     `json:"itemName"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	RenterID         uuid.UUID  `json:"renterId"`
	Dates            []string   `json:"dates"`
	Status           string     `json:"status"`
	TotalAmountCents int64      `json:"totalAmountCents"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	StatusChangedAt  *time.Time `json:"statusChangedAt,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// Field names match one to one.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}
