package converter

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/pgconv"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"
)

func ReservationToInfra(res *reservation.Reservation) pgsql.CreateRentParams {
	return pgsql.CreateRentParams{
		ID:          res.ID(),
		ProductID:   res.ItemID(),
		UserID:      res.RenterID(),
		Dates:       res.Dates().Strings(),
		Status:      res.Status().String(),
		TotalAmount: res.Total().Cents(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
	}
}

func RentToRecord(row pgsql.Rent) *shared.ReservationRecord {
	return &shared.ReservationRecord{
		ID:              row.ID,
		ItemID:          row.ProductID,
		RenterID:        row.UserID,
		Dates:           row.Dates,
		Status:          row.Status,
		TotalAmount:     row.TotalAmount,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		StatusChangedAt: pgconv.TimePtrFromPgtype(row.StatusChangedAt),
	}
}
