package normalize

import (
	"log/slog"
	"strings"

	"greekevents-backend/lib/htmlutil"
	"greekevents-backend/lib/textutil"
)

// Normalize converts one raw record into a CanonicalEvent. It cannot
// fail: every field extractor degrades to its default on bad input,
// and an unreadable record yields an all-default event rather than an
// error, so one malformed record never discards a batch.
func (n Normalizer) Normalize(raw RawRecord, source string) (event CanonicalEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("salvaging unreadable record", "source", source, "panic", r)
			event = n.defaultEvent(source)
			if raw != nil {
				event.URL = raw.GetString("url")
				if event.URL != "" {
					event.ID = StableID(source, event.URL)
				}
			}
		}
	}()

	title := textutil.CleanText(raw.GetString("title"), n.config.MaxTextLength)
	if title == "" {
		title = n.config.DefaultTitle
	}

	location := textutil.Truncate(
		textutil.CleanText(raw.GetString("location"), n.config.MaxTextLength),
		n.config.MaxLocationLength,
	)

	url := raw.GetString("url")

	event = CanonicalEvent{
		Title:       title,
		Description: n.description(raw, title),
		Date:        n.ExtractDate(raw.GetString("date")),
		Region:      n.ExtractRegion(raw.GetString("location")),
		Category:    n.ExtractCategory(raw),
		Price:       n.ExtractPrice(raw.GetString("price")),
		MaxCapacity: n.config.DefaultCapacity,
		Location:    location,
		URL:         url,
		Image:       n.ExtractImage(raw),
		Source:      source,
	}
	if url != "" {
		event.ID = StableID(source, url)
	}
	return event
}

// description runs the fallback chain: explicit description field,
// first three content items joined, leading slice of the captured
// page text, and finally the title itself. The upstream scrapers are
// wildly inconsistent about which of these they fill in; the chain
// absorbs that here instead of propagating empty fields downstream.
func (n Normalizer) description(raw RawRecord, title string) string {
	desc := textutil.CleanText(raw.GetString("description"), n.config.MaxTextLength)
	if desc != "" {
		return desc
	}

	if content := raw.GetStringList("content"); len(content) > 0 {
		if len(content) > 3 {
			content = content[:3]
		}
		desc = textutil.CleanText(strings.Join(content, " "), n.config.MaxTextLength)
		if desc != "" {
			return desc
		}
	}

	if full := raw.GetString("full_text"); full != "" {
		full = htmlutil.StripTags(full)
		full = textutil.Truncate(full, n.config.MaxTextLength)
		desc = textutil.CleanText(full, n.config.MaxTextLength)
		if desc != "" {
			return desc
		}
	}

	return title
}

func (n Normalizer) defaultEvent(source string) CanonicalEvent {
	return CanonicalEvent{
		Title:       n.config.DefaultTitle,
		Description: n.config.DefaultTitle,
		Date:        n.ExtractDate(""),
		Region:      n.config.DefaultRegion,
		Category:    n.config.DefaultCategory,
		MaxCapacity: n.config.DefaultCapacity,
		Source:      source,
	}
}
