package readstore

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/pgsql"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	ListCategoriesByIDs(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID) ([]pgsql.Category, error)
	ListImagesByProductIDs(ctx context.Context, db pgsql.DBTX, productIDs []uuid.UUID) ([]pgsql.ProductImage, error)
}

// CatalogReadStore serves the item decorations: categories and images.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      pgsql.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db pgsql.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) CategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListCategoriesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}

	result := make([]*queries.CategoryView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CategoryView{ID: row.ID, Name: row.Name}
	}
	return result, nil
}

func (r *CatalogReadStore) ImagesByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.ImageView, error) {
	rows, err := r.queries.ListImagesByProductIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item images", err)
	}

	result := make([]*queries.ImageView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ImageView{ID: row.ID, ItemID: row.ProductID, URL: row.ImageURL}
	}
	return result, nil
}
