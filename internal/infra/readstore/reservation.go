package readstore

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/pgconv"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetRentView(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.RentView, error)
	ListRentViewsByUser(ctx context.Context, db pgsql.DBTX, arg pgsql.ListRentViewsByUserParams) ([]pgsql.RentView, error)
	ListRentViewsByProduct(ctx context.Context, db pgsql.DBTX, productID uuid.UUID) ([]pgsql.RentView, error)
	ListHoldingRentsByProduct(ctx context.Context, db pgsql.DBTX, productID uuid.UUID) ([]pgsql.Rent, error)
	ListRentsByProductIDs(ctx context.Context, db pgsql.DBTX, productIDs []uuid.UUID) ([]pgsql.Rent, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetRentView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByRenter(ctx context.Context, renterID uuid.UUID, limit int) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListRentViewsByUser(ctx, r.db, pgsql.ListRentViewsByUserParams{
		UserID: renterID,
		Limit:  uint(limit), // #nosec G115 -- limit is clamped by the caller
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by renter", err)
	}
	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListRentViewsByProduct(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by item", err)
	}
	return rowsToReservationViews(rows), nil
}

// FindHoldingByItem returns the item's reservations that still block
// their dates.
func (r *ReservationReadStore) FindHoldingByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.ReservationSummary, error) {
	rows, err := r.queries.ListHoldingRentsByProduct(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holding reservations", err)
	}
	return rowsToSummaries(rows), nil
}

func (r *ReservationReadStore) FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.ReservationSummary, error) {
	rows, err := r.queries.ListRentsByProductIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by items", err)
	}
	return rowsToSummaries(rows), nil
}

func rowToReservationView(row pgsql.RentView) *queries.ReservationView {
	return &queries.ReservationView{
		ID:               row.ID,
		ItemID:           row.ProductID,
		ItemName:         row.ProductName,
		OwnerID:          row.OwnerID,
		RenterID:         row.UserID,
		Dates:            row.Dates,
		Status:           row.Status,
		TotalAmountCents: row.TotalAmount,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		StatusChangedAt:  pgconv.TimePtrFromPgtype(row.StatusChangedAt),
	}
}

func rowsToReservationViews(rows []pgsql.RentView) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result
}

func rowsToSummaries(rows []pgsql.Rent) []*queries.ReservationSummary {
	result := make([]*queries.ReservationSummary, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationSummary{
			ID:               row.ID,
			ItemID:           row.ProductID,
			RenterID:         row.UserID,
			Dates:            row.Dates,
			Status:           row.Status,
			TotalAmountCents: row.TotalAmount,
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
			StatusChangedAt:  pgconv.TimePtrFromPgtype(row.StatusChangedAt),
		}
	}
	return result
}
