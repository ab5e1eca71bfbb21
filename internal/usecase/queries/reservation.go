package queries

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRenter(ctx context.Context, renterID uuid.UUID, limit int) ([]*ReservationView, error)
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*ReservationView, error)
	FindHoldingByItem(ctx context.Context, itemID uuid.UUID) ([]*ReservationSummary, error)
	FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*ReservationSummary, error)
}

type ReservationQueries interface {
	// GetByID is visible to the renter and to the item owner only.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the visibility check for internal callers.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID, limit int) ([]*ReservationView, error)
	ListByItem(ctx context.Context, actor uuid.UUID, itemID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	items ItemReadStore
}

func NewReservationQueries(store ReservationReadStore, items ItemReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, items: items}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Strangers get the same answer as for a missing reservation.
	if actor == uuid.Nil || (actor != view.RenterID && actor != view.OwnerID) {
		return nil, errs.ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID, limit int) ([]*ReservationView, error) {
	if renterID == uuid.Nil {
		return nil, errs.ErrRenterNotAuthenticated
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := q.store.FindByRenter(ctx, renterID, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}

func (q *reservationQueriesImpl) ListByItem(ctx context.Context, actor uuid.UUID, itemID uuid.UUID) ([]*ReservationView, error) {
	it, err := findItem(ctx, q.items, itemID)
	if err != nil {
		return nil, err
	}
	if actor == uuid.Nil || it.OwnerID != actor {
		return nil, reservation.ErrNotAuthorized
	}
	rows, err := q.store.FindByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
