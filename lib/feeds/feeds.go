package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"greekevents-backend/lib/normalize"
	"greekevents-backend/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("greekevents.lib.feeds")

var client = resty.New()

func init() {
	restyutil.InstrumentClient(client, tracer)
}

// Source names one scraper feed. File points at the scraper's JSON
// dump; Url, when set, takes precedence and fetches the same payload
// over HTTP.
type Source struct {
	Name string `json:"name"`
	File string `json:"file"`
	Url  string `json:"url"`
}

// LoadFile reads one scraper dump: a JSON array of loose objects.
func LoadFile(path string) ([]normalize.RawRecord, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []normalize.RawRecord
	err = json.Unmarshal(contents, &records)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Fetch retrieves a feed over HTTP.
func Fetch(ctx context.Context, url string) ([]normalize.RawRecord, error) {
	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", url, res.StatusCode())
	}
	var records []normalize.RawRecord
	err = json.Unmarshal(res.Body(), &records)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return records, nil
}

// LoadSources gathers every configured feed in order. A source that
// cannot be read is logged and contributes nothing; the scrapers fail
// often enough that one dead feed must not block the others.
func LoadSources(ctx context.Context, sources []Source) []normalize.SourceBatch {
	ctx, span := tracer.Start(ctx, "LoadSources")
	defer span.End()

	var batches []normalize.SourceBatch
	for _, source := range sources {
		var records []normalize.RawRecord
		var err error
		if source.Url != "" {
			records, err = Fetch(ctx, source.Url)
		} else {
			records, err = LoadFile(source.File)
		}
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable feed",
				"source", source.Name, "err", err)
			continue
		}
		slog.InfoContext(ctx, "loaded feed", "source", source.Name, "records", len(records))
		batches = append(batches, normalize.SourceBatch{
			Source:  source.Name,
			Records: records,
		})
	}

	span.SetAttributes(attribute.Int("sources", len(batches)))
	return batches
}
