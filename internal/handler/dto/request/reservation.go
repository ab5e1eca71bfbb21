package request

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Dates  []string  `json:"dates" binding:"required,min=1,dive,isodate"`
}

// ToDates parses the request dates. Binding has already checked the format.
func (r CreateReservationRequest) ToDates() ([]calendar.Date, error) {
	return calendar.ParseDates(r.Dates)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,reservationstatus"`
}

func (r UpdateStatusRequest) ToStatus() (reservation.Status, error) {
	return reservation.ParseStatus(r.Status)
}

type ListReservationsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
