package repository

import (
	"context"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/repository/converter"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateRent(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateRentParams) error
	InsertRentDates(ctx context.Context, db pgsql.DBTX, rentID, productID uuid.UUID, dates []string) (int64, error)
	DeleteRentDates(ctx context.Context, db pgsql.DBTX, rentID uuid.UUID) (int64, error)
	GetRentForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Rent, error)
	UpdateRentStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateRentStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the rent row and one rent_dates row per date. A date
// already held on the item surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params := converter.ReservationToInfra(res)

	if err := r.queries.CreateRent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	if _, err := r.queries.InsertRentDates(ctx, r.db, params.ID, params.ProductID, params.Dates); err != nil {
		if infra.ClassifyPgError(err) == infra.KindDuplicateKey {
			return infra.WrapRepoErr("reservation dates already taken", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to claim reservation dates", err)
	}

	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.ReservationRecord, error) {
	row, err := r.queries.GetRentForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.RentToRecord(row), nil
}

// UpdateStatus is a compare-and-set on the current status.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, changedAt time.Time) error {
	n, err := r.queries.UpdateRentStatus(ctx, r.db, pgsql.UpdateRentStatusParams{
		ID:        id,
		From:      from.String(),
		To:        to.String(),
		ChangedAt: changedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) ReleaseDates(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.DeleteRentDates(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to release reservation dates", err)
	}
	return nil
}
