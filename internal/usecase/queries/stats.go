package queries

import (
	"context"
	"log/slog"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const UnknownCategory = "unknown"

const tracerName = "github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

type StatsQueries interface {
	OwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStatsView, error)
}

type statsQueriesImpl struct {
	items                    ItemReadStore
	catalog                  CatalogReadStore
	reservations             ReservationReadStore
	earningsIncludeCancelled bool
	tracer                   trace.Tracer
}

func NewStatsQueries(
	items ItemReadStore,
	catalog CatalogReadStore,
	reservations ReservationReadStore,
	cfg config.Config,
	tp trace.TracerProvider,
) StatsQueries {
	return &statsQueriesImpl{
		items:                    items,
		catalog:                  catalog,
		reservations:             reservations,
		earningsIncludeCancelled: cfg.Booking.EarningsIncludeCancelled,
		tracer:                   tp.Tracer(tracerName),
	}
}

// OwnerStats reads the owner's items once, then categories, images and
// reservations in one batched read each, and folds them per item.
func (q *statsQueriesImpl) OwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStatsView, error) {
	ctx, span := q.tracer.Start(ctx, "StatsQueries.OwnerStats")
	defer span.End()
	span.SetAttributes(attribute.String("owner.id", ownerID.String()))

	if ownerID == uuid.Nil {
		return nil, errs.ErrRenterNotAuthenticated
	}

	items, err := q.items.FindByOwner(ctx, ownerID)
	if err != nil {
		span.SetStatus(codes.Error, "items read failed")
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &OwnerStatsView{
		OwnerID:                  ownerID,
		Items:                    make([]*ItemStats, 0, len(items)),
		EarningsIncludeCancelled: q.earningsIncludeCancelled,
	}
	if len(items) == 0 {
		return result, nil
	}

	itemIDs := make([]uuid.UUID, len(items))
	var categoryIDs []uuid.UUID
	seenCategory := make(map[uuid.UUID]struct{})
	for i, it := range items {
		itemIDs[i] = it.ID
		if it.CategoryID == nil {
			continue
		}
		if _, ok := seenCategory[*it.CategoryID]; !ok {
			seenCategory[*it.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, *it.CategoryID)
		}
	}

	var (
		categories []*CategoryView
		images     []*ImageView
		rents      []*ReservationSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = q.catalog.CategoriesByIDs(gctx, categoryIDs)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = q.catalog.ImagesByItemIDs(gctx, itemIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rents, err = q.reservations.FindByItemIDs(gctx, itemIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, "batched read failed")
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	imagesByItem := make(map[uuid.UUID][]string)
	for _, img := range images {
		imagesByItem[img.ItemID] = append(imagesByItem[img.ItemID], img.URL)
	}
	rentsByItem := make(map[uuid.UUID][]*ReservationSummary)
	for _, r := range rents {
		rentsByItem[r.ItemID] = append(rentsByItem[r.ItemID], r)
	}

	degraded := 0
	for _, it := range items {
		stats, err := q.foldItem(it, categoryNames, imagesByItem[it.ID], rentsByItem[it.ID])
		if err != nil {
			slog.Warn("item stats degraded", "item_id", it.ID.String(), "error", err.Error())
			stats = placeholderStats(it)
			degraded++
		}
		result.Items = append(result.Items, stats)
		result.TotalReservations += stats.TotalReservations
		result.ActiveReservations += stats.ActiveReservations
		result.TotalEarningsCents += stats.TotalEarningsCents
	}
	result.TotalItems = len(result.Items)

	span.SetAttributes(
		attribute.Int("items.count", result.TotalItems),
		attribute.Int("items.degraded", degraded),
	)
	return result, nil
}

func (q *statsQueriesImpl) foldItem(it *ItemView, categoryNames map[uuid.UUID]string, imageURLs []string, rents []*ReservationSummary) (*ItemStats, error) {
	if it.DecodeErr != nil {
		return nil, it.DecodeErr
	}
	stats := &ItemStats{
		ItemID:       it.ID,
		Name:         it.Name,
		CategoryName: UnknownCategory,
		ImageURLs:    imageURLs,
	}
	if stats.ImageURLs == nil {
		stats.ImageURLs = []string{}
	}
	if it.CategoryID != nil {
		if name, ok := categoryNames[*it.CategoryID]; ok {
			stats.CategoryName = name
		}
	}

	for _, r := range rents {
		status, err := reservation.ParseStatus(r.Status)
		if err != nil {
			return nil, errs.Wrapf(err, "reservation %s has status %q", r.ID, r.Status)
		}
		amount, err := reservation.NewMoney(r.TotalAmountCents)
		if err != nil {
			return nil, errs.Wrapf(err, "reservation %s", r.ID)
		}

		stats.TotalReservations++
		if status.IsActive() {
			stats.ActiveReservations++
		}
		if status != reservation.StatusCancelled || q.earningsIncludeCancelled {
			stats.TotalEarningsCents += amount.Cents()
		}
	}
	return stats, nil
}

func placeholderStats(it *ItemView) *ItemStats {
	return &ItemStats{
		ItemID:       it.ID,
		Name:         it.Name,
		CategoryName: UnknownCategory,
		ImageURLs:    []string{},
		Degraded:     true,
	}
}
