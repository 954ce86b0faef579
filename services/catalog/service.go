package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"greekevents-backend/lib/normalize"
	"greekevents-backend/services/catalog/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("greekevents.services.catalog")

// PersistResult is the terminal state of one persistence attempt.
type PersistResult string

const (
	ResultCreated          PersistResult = "created"
	ResultSkippedDuplicate PersistResult = "skipped-duplicate"
	ResultFailed           PersistResult = "failed"
)

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// Persist stores one event with at-most-once-per-url semantics: an
// event whose url already exists is skipped without touching the
// stored row. Store errors come back as ResultFailed instead of an
// error so a batch caller can keep going.
func (s Service) Persist(ctx context.Context, event normalize.CanonicalEvent) PersistResult {
	ctx, span := tracer.Start(ctx, "Persist")
	defer span.End()
	span.SetAttributes(attribute.String("url", event.URL))

	if event.URL == "" {
		// no url, no uniqueness key; refusing beats silently
		// accumulating unidentifiable rows
		slog.WarnContext(ctx, "refusing to persist event without url",
			"title", event.Title, "source", event.Source)
		span.SetStatus(codes.Error, "event has no url")
		return ResultFailed
	}

	_, err := s.qry.GetEventByUrl(ctx, event.URL)
	if err == nil {
		return ResultSkippedDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ResultFailed
	}

	err = s.qry.CreateEvent(ctx, db.CreateEventParams{
		EventID:     event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Region:      string(event.Region),
		Category:    string(event.Category),
		Price:       event.Price,
		MaxCapacity: int64(event.MaxCapacity),
		Location:    event.Location,
		Url:         event.URL,
		Image:       event.Image,
		Source:      event.Source,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ResultFailed
	}
	return ResultCreated
}

type BatchResult struct {
	Created int
	Skipped int
	Failed  int
}

// PersistBatch persists every event independently; one failing record
// cannot poison the rest of the batch.
func (s Service) PersistBatch(ctx context.Context, events []normalize.CanonicalEvent) BatchResult {
	ctx, span := tracer.Start(ctx, "PersistBatch")
	defer span.End()

	var result BatchResult
	for _, event := range events {
		switch s.Persist(ctx, event) {
		case ResultCreated:
			result.Created++
		case ResultSkippedDuplicate:
			result.Skipped++
		case ResultFailed:
			result.Failed++
		}
	}

	span.SetAttributes(
		attribute.Int("created", result.Created),
		attribute.Int("skipped", result.Skipped),
		attribute.Int("failed", result.Failed),
	)
	slog.InfoContext(ctx, "persisted batch",
		"created", result.Created, "skipped", result.Skipped, "failed", result.Failed)
	return result
}

// PersistDeal mirrors Persist for deal listings.
func (s Service) PersistDeal(ctx context.Context, deal normalize.CanonicalDeal) PersistResult {
	ctx, span := tracer.Start(ctx, "PersistDeal")
	defer span.End()
	span.SetAttributes(attribute.String("url", deal.URL))

	if deal.URL == "" {
		span.SetStatus(codes.Error, "deal has no url")
		return ResultFailed
	}

	_, err := s.qry.GetDealByUrl(ctx, deal.URL)
	if err == nil {
		return ResultSkippedDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ResultFailed
	}

	err = s.qry.CreateDeal(ctx, db.CreateDealParams{
		DealID:          deal.ID,
		Title:           deal.Title,
		Description:     deal.Description,
		Price:           deal.Price,
		DiscountPercent: deal.DiscountPercent,
		Url:             deal.URL,
		Source:          deal.Source,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ResultFailed
	}
	return ResultCreated
}

// StoredEvents returns everything in the catalog in insertion order.
func (s Service) StoredEvents(ctx context.Context) ([]db.Event, error) {
	return s.qry.ListEvents(ctx)
}
