package report

import (
	"sort"

	"greekevents-backend/lib/normalize"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Count struct {
	Key   string
	Count int
}

// Summary groups the normalized set for observability: how many
// events each source contributed and how they spread over categories
// and regions.
type Summary struct {
	BySource   []Count
	ByCategory []Count
	ByRegion   []Count
}

// Summarize is pure and read-only. Each grouping is sorted descending
// by count; ties keep first-seen key order.
func Summarize(events []normalize.CanonicalEvent) Summary {
	var source, category, region tally
	for _, event := range events {
		source.add(event.Source)
		category.add(string(event.Category))
		region.add(string(event.Region))
	}
	return Summary{
		BySource:   source.sorted(),
		ByCategory: category.sorted(),
		ByRegion:   region.sorted(),
	}
}

type tally struct {
	order  []string
	counts map[string]int
}

func (t *tally) add(key string) {
	if t.counts == nil {
		t.counts = map[string]int{}
	}
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally) sorted() []Count {
	out := make([]Count, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, Count{Key: key, Count: t.counts[key]})
	}
	// stable keeps insertion order among equal counts
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// RenderSummary renders the three groupings as one rounded table for
// the CLI.
func RenderSummary(summary Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Group", "Key", "Count"})
	appendGroup(t, "source", summary.BySource)
	appendGroup(t, "category", summary.ByCategory)
	appendGroup(t, "region", summary.ByRegion)
	return t.Render()
}

func appendGroup(t table.Writer, group string, counts []Count) {
	for _, c := range counts {
		t.AppendRow(table.Row{group, c.Key, c.Count})
	}
	t.AppendSeparator()
}
