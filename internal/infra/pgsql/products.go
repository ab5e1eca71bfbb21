package pgsql

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

var productColumns = []interface{}{"id", "owner_id", "category_id", "name", "price", "availabilities"}

func (q *Queries) GetProduct(ctx context.Context, db DBTX, id uuid.UUID) (Product, error) {
	b := dialect.From("products").
		Select(productColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)
	return collectOne[Product](ctx, db, b)
}

func (q *Queries) ListProductsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Product, error) {
	b := dialect.From("products").
		Select(productColumns...).
		Where(goqu.C("owner_id").Eq(ownerID)).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()).
		Prepared(true)
	return collect[Product](ctx, db, b)
}

func (q *Queries) ListCategoriesByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	b := dialect.From("categories").
		Select("id", "name").
		Where(goqu.C("id").In(ids)).
		Prepared(true)
	return collect[Category](ctx, db, b)
}

func (q *Queries) ListImagesByProductIDs(ctx context.Context, db DBTX, productIDs []uuid.UUID) ([]ProductImage, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	b := dialect.From("product_images").
		Select("id", "product_id", "image_url").
		Where(goqu.C("product_id").In(productIDs)).
		Order(goqu.C("product_id").Asc(), goqu.C("id").Asc()).
		Prepared(true)
	return collect[ProductImage](ctx, db, b)
}
