package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// every field must come out populated no matter how little the source
// provided
func TestNormalizeTotality(t *testing.T) {
	n := testNormalizer()

	for _, raw := range []RawRecord{
		nil,
		{},
		{"title": ""},
		{"price": []any{"not", "a", "price"}},
		{"date": map[string]any{"nested": true}},
		{"images": "not-a-list", "content": 42.0},
	} {
		event := n.Normalize(raw, "more")
		require.NotEmpty(t, event.Title)
		require.NotEmpty(t, event.Description)
		require.NotEmpty(t, event.Date)
		require.NotEmpty(t, event.Region)
		require.NotEmpty(t, event.Category)
		require.GreaterOrEqual(t, event.Price, 0.0)
		require.Equal(t, 100, event.MaxCapacity)
		require.Equal(t, "more", event.Source)
	}
}

func TestNormalizeEndToEnd(t *testing.T) {
	n := testNormalizer()

	event := n.Normalize(RawRecord{
		"title":    "Masterclass Ζυμαρικά",
		"location": "Technopolis, Gazi, Athens",
		"price":    "free",
		"date":     "17 Jan 2026",
		"url":      "https://x/1",
	}, "more")

	require.Equal(t, "Masterclass Ζυμαρικά", event.Title)
	require.Equal(t, RegionAttica, event.Region)
	require.Equal(t, CategoryCultural, event.Category)
	require.Equal(t, 0.0, event.Price)
	require.Equal(t, "2026-01-17", event.Date)
	require.Equal(t, "more", event.Source)
	require.Equal(t, "https://x/1", event.URL)
	require.NotEmpty(t, event.ID)
}

func TestNormalizeConcertWithoutLocation(t *testing.T) {
	n := testNormalizer()

	event := n.Normalize(RawRecord{
		"title":    "Βραδιά τζαζ",
		"category": "live concert",
	}, "pigolampides")

	require.Equal(t, CategoryMusic, event.Category)
	require.Equal(t, n.Config().DefaultRegion, event.Region)
}

func TestDescriptionFallbackChain(t *testing.T) {
	n := testNormalizer()

	// explicit description wins
	event := n.Normalize(RawRecord{
		"title":       "t",
		"description": "the real description",
		"content":     []any{"a", "b"},
	}, "s")
	require.Equal(t, "the real description", event.Description)

	// first three content items joined
	event = n.Normalize(RawRecord{
		"title":   "t",
		"content": []any{"one", "two", "three", "four"},
	}, "s")
	require.Equal(t, "one two three", event.Description)

	// captured page text, markup stripped, bounded at the text limit
	event = n.Normalize(RawRecord{
		"title":     "t",
		"full_text": "<p>" + strings.Repeat("x", 700) + "</p>",
	}, "s")
	require.Equal(t, strings.Repeat("x", 500), event.Description)

	// an overlong explicit description gets the ellipsis treatment
	event = n.Normalize(RawRecord{
		"title":       "t",
		"description": strings.Repeat("y", 700),
	}, "s")
	require.Equal(t, strings.Repeat("y", 497)+"...", event.Description)

	// title is the last resort
	event = n.Normalize(RawRecord{"title": "Μόνο τίτλος"}, "s")
	require.Equal(t, "Μόνο τίτλος", event.Description)
}

func TestNormalizeUntitled(t *testing.T) {
	n := testNormalizer()

	event := n.Normalize(RawRecord{"url": "https://x/2"}, "culture")
	require.Equal(t, "Untitled Event", event.Title)
	require.Equal(t, "Untitled Event", event.Description)
}

func TestNormalizeBoundsLocation(t *testing.T) {
	n := testNormalizer()

	event := n.Normalize(RawRecord{
		"title":    "t",
		"location": strings.Repeat("Α", 300) + " Athens",
	}, "s")
	require.Len(t, []rune(event.Location), 200)
	// region matching sees the full location, not the stored bound
	require.Equal(t, RegionAttica, event.Region)
}

func TestNormalizeDeal(t *testing.T) {
	n := testNormalizer()

	deal := n.NormalizeDeal(RawRecord{
		"title":       "Σαββατοκύριακο στη Σαντορίνη",
		"description": "2 νύχτες με πρωινό",
		"price":       "από 120€",
		"discount":    "-35%",
		"url":         "https://deals/42",
	}, "deals")

	require.Equal(t, 120.0, deal.Price)
	require.Equal(t, 35.0, deal.DiscountPercent)
	require.Equal(t, "2 νύχτες με πρωινό", deal.Description)
	require.NotEmpty(t, deal.ID)

	// sparse deals still come out fully populated
	deal = n.NormalizeDeal(RawRecord{}, "deals")
	require.Equal(t, "Untitled Event", deal.Title)
	require.Equal(t, 0.0, deal.Price)
	require.Equal(t, 0.0, deal.DiscountPercent)
}
