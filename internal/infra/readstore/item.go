package readstore

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/pgconv"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemReadQueries interface {
	GetProduct(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Product, error)
	ListProductsByOwner(ctx context.Context, db pgsql.DBTX, ownerID uuid.UUID) ([]pgsql.Product, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      pgsql.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db pgsql.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return productToItemView(row)
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListProductsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}

	// one bad row must not hide the owner's other items
	result := make([]*queries.ItemView, 0, len(rows))
	for _, row := range rows {
		view, err := productToItemView(row)
		if err != nil {
			view = &queries.ItemView{
				ID:         row.ID,
				OwnerID:    row.OwnerID,
				CategoryID: pgconv.UUIDPtrFromPgtype(row.CategoryID),
				Name:       row.Name,
				DecodeErr:  err,
			}
		}
		result = append(result, view)
	}
	return result, nil
}

func productToItemView(row pgsql.Product) (*queries.ItemView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("item has unreadable price", errs.Wrapf(err, "item %s", row.ID), infra.KindDBFailure)
	}
	return &queries.ItemView{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		CategoryID:     pgconv.UUIDPtrFromPgtype(row.CategoryID),
		Name:           row.Name,
		Price:          price,
		Availabilities: row.Availabilities,
	}, nil
}
