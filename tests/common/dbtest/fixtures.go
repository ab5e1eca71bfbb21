//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultCategoryName = "Tools"

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can seed
// inside a test transaction as well.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db Querier) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO users (id) VALUES ($1)", userID)
	require.NoError(t, err)
	return userID
}

func DefaultCategoryID(t *testing.T, db Querier) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM categories WHERE name = $1", DefaultCategoryName).Scan(&id)
	require.NoError(t, err)
	return id
}

type ItemFixture struct {
	OwnerID    uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Price      string
	Weekdays   []string
	ImageURLs  []string
}

func CreateTestItem(t *testing.T, db Querier, f ItemFixture) uuid.UUID {
	t.Helper()

	if f.Weekdays == nil {
		f.Weekdays = []string{}
	}
	itemID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO products (id, owner_id, category_id, name, price, availabilities) VALUES ($1, $2, $3, $4, $5::numeric, $6::text[])",
		itemID, f.OwnerID, f.CategoryID, f.Name, f.Price, f.Weekdays)
	require.NoError(t, err)

	for _, url := range f.ImageURLs {
		_, err := db.Exec(ctx, "INSERT INTO product_images (product_id, image_url) VALUES ($1, $2)", itemID, url)
		require.NoError(t, err)
	}
	return itemID
}

func CountReservations(t *testing.T, db Querier, itemID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM rents WHERE product_id = $1", itemID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING;
	`, DefaultCategoryName)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
