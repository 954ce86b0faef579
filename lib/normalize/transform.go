package normalize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("greekevents.lib.normalize")

// SourceBatch pairs a source name with the raw records it produced,
// in scrape order.
type SourceBatch struct {
	Source  string      `json:"source"`
	Records []RawRecord `json:"records"`
}

// StableID derives the canonical event id from source and url, so the
// same listing gets the same id on every run.
func StableID(source, url string) string {
	sum := sha256.Sum256([]byte(source + "\x00" + url))
	return hex.EncodeToString(sum[:8])
}

// TransformAll normalizes every record of every batch. Batches are
// processed in caller order and records in scrape order, so output
// order is stable. A url recurring within the same source is kept
// only once (first occurrence); the same url under two different
// sources stays two events, because distinct sources are distinct
// catalog entries even when they describe the same physical event.
func (n Normalizer) TransformAll(ctx context.Context, batches []SourceBatch) []CanonicalEvent {
	ctx, span := tracer.Start(ctx, "TransformAll")
	defer span.End()

	type sourceURL struct {
		source string
		url    string
	}
	seen := map[sourceURL]bool{}

	var out []CanonicalEvent
	for _, batch := range batches {
		kept := 0
		for i, raw := range batch.Records {
			event := n.Normalize(raw, batch.Source)

			if event.URL != "" {
				key := sourceURL{batch.Source, event.URL}
				if seen[key] {
					slog.DebugContext(ctx, "dropping duplicate url",
						"source", batch.Source, "url", event.URL)
					continue
				}
				seen[key] = true
			} else {
				// no url means no dedup key; the id still has to be
				// deterministic for identical input
				event.ID = StableID(batch.Source, fmt.Sprintf("#%d", i))
			}

			out = append(out, event)
			kept++
		}
		slog.InfoContext(ctx, "transformed source",
			"source", batch.Source, "records", len(batch.Records), "kept", kept)
	}

	span.SetAttributes(attribute.Int("events", len(out)))
	return out
}
