// Package pgsql holds the hand-written query layer over pgx. Methods take
// the executor explicitly so the same Queries value serves pool and tx.
package pgsql

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

var dialect = goqu.Dialect("postgres")

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type sqlBuilder interface {
	ToSQL() (string, []interface{}, error)
}

func collect[T any](ctx context.Context, db DBTX, b sqlBuilder) ([]T, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func collectOne[T any](ctx context.Context, db DBTX, b sqlBuilder) (T, error) {
	var zero T
	query, args, err := b.ToSQL()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}

func exec(ctx context.Context, db DBTX, b sqlBuilder) (int64, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
