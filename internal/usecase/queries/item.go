package queries

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/item"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
}

type CatalogReadStore interface {
	CategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*CategoryView, error)
	ImagesByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*ImageView, error)
}

func findItem(ctx context.Context, store ItemReadStore, id uuid.UUID) (*ItemView, error) {
	view, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ToDomain rebuilds the item entity from its stored columns.
func (v *ItemView) ToDomain() (*item.Item, error) {
	weekly, err := calendar.ParseWeekdaySet(v.Availabilities)
	if err != nil {
		return nil, errs.Wrapf(err, "item %s", v.ID)
	}
	return item.ReconstructItem(v.ID, v.OwnerID, v.CategoryID, v.Name, v.Price, weekly), nil
}
