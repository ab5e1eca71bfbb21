package pgsql

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const statusCancelled = "cancelled"

var rentColumns = []interface{}{
	"id", "product_id", "user_id", "dates", "status", "total_amount",
	"created_at", "updated_at", "status_changed_at",
}

func rentViewSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T("rents").As("r")).
		Join(goqu.T("products").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("r.product_id")))).
		Select(
			goqu.I("r.id"), goqu.I("r.product_id"), goqu.I("r.user_id"), goqu.I("r.dates"),
			goqu.I("r.status"), goqu.I("r.total_amount"), goqu.I("r.created_at"),
			goqu.I("r.updated_at"), goqu.I("r.status_changed_at"),
			goqu.I("p.name").As("product_name"), goqu.I("p.owner_id"),
		)
}

// text[] parameters are bound by pgx directly; goqu would expand them.
const createRent = `INSERT INTO rents (id, product_id, user_id, dates, status, total_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4::text[], $5, $6, $7, $8)`

type CreateRentParams struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	UserID      uuid.UUID
	Dates       []string
	Status      string
	TotalAmount int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateRent(ctx context.Context, db DBTX, arg CreateRentParams) error {
	_, err := db.Exec(ctx, createRent,
		arg.ID, arg.ProductID, arg.UserID, arg.Dates, arg.Status, arg.TotalAmount, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const insertRentDates = `INSERT INTO rent_dates (rent_id, product_id, date)
SELECT $1, $2, d::date FROM unnest($3::text[]) AS d`

func (q *Queries) InsertRentDates(ctx context.Context, db DBTX, rentID, productID uuid.UUID, dates []string) (int64, error) {
	tag, err := db.Exec(ctx, insertRentDates, rentID, productID, dates)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) DeleteRentDates(ctx context.Context, db DBTX, rentID uuid.UUID) (int64, error) {
	b := dialect.Delete("rent_dates").
		Where(goqu.C("rent_id").Eq(rentID)).
		Prepared(true)
	return exec(ctx, db, b)
}

func (q *Queries) GetRentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Rent, error) {
	b := dialect.From("rents").
		Select(rentColumns...).
		Where(goqu.C("id").Eq(id)).
		ForUpdate(exp.Wait).
		Prepared(true)
	return collectOne[Rent](ctx, db, b)
}

// ListHoldingRentsByProduct returns the rents still blocking dates on a
// product, that is every rent not cancelled.
func (q *Queries) ListHoldingRentsByProduct(ctx context.Context, db DBTX, productID uuid.UUID) ([]Rent, error) {
	b := dialect.From("rents").
		Select(rentColumns...).
		Where(
			goqu.C("product_id").Eq(productID),
			goqu.C("status").Neq(statusCancelled),
		).
		Order(goqu.C("created_at").Asc()).
		Prepared(true)
	return collect[Rent](ctx, db, b)
}

func (q *Queries) ListRentsByProductIDs(ctx context.Context, db DBTX, productIDs []uuid.UUID) ([]Rent, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	b := dialect.From("rents").
		Select(rentColumns...).
		Where(goqu.C("product_id").In(productIDs)).
		Order(goqu.C("product_id").Asc(), goqu.C("created_at").Asc()).
		Prepared(true)
	return collect[Rent](ctx, db, b)
}

type UpdateRentStatusParams struct {
	ID        uuid.UUID
	From      string
	To        string
	ChangedAt time.Time
}

// UpdateRentStatus only applies when the row still carries From.
func (q *Queries) UpdateRentStatus(ctx context.Context, db DBTX, arg UpdateRentStatusParams) (int64, error) {
	b := dialect.Update("rents").
		Set(goqu.Record{
			"status":            arg.To,
			"updated_at":        arg.ChangedAt,
			"status_changed_at": arg.ChangedAt,
		}).
		Where(
			goqu.C("id").Eq(arg.ID),
			goqu.C("status").Eq(arg.From),
		).
		Prepared(true)
	return exec(ctx, db, b)
}

func (q *Queries) GetRentView(ctx context.Context, db DBTX, id uuid.UUID) (RentView, error) {
	b := rentViewSelect().
		Where(goqu.I("r.id").Eq(id)).
		Prepared(true)
	return collectOne[RentView](ctx, db, b)
}

type ListRentViewsByUserParams struct {
	UserID uuid.UUID
	Limit  uint
}

func (q *Queries) ListRentViewsByUser(ctx context.Context, db DBTX, arg ListRentViewsByUserParams) ([]RentView, error) {
	b := rentViewSelect().
		Where(goqu.I("r.user_id").Eq(arg.UserID)).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()).
		Limit(arg.Limit).
		Prepared(true)
	return collect[RentView](ctx, db, b)
}

func (q *Queries) ListRentViewsByProduct(ctx context.Context, db DBTX, productID uuid.UUID) ([]RentView, error) {
	b := rentViewSelect().
		Where(goqu.I("r.product_id").Eq(productID)).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()).
		Prepared(true)
	return collect[RentView](ctx, db, b)
}
