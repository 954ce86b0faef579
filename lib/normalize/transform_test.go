package normalize

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTransformAllOrderAndDedup(t *testing.T) {
	n := testNormalizer()
	ctx := context.Background()

	batches := []SourceBatch{
		{
			Source: "Visit Greece",
			Records: []RawRecord{
				{"title": "A", "url": "https://x/a"},
				{"title": "B", "url": "https://x/b"},
				{"title": "A again", "url": "https://x/a"},
			},
		},
		{
			Source: "More.com",
			Records: []RawRecord{
				{"title": "C", "url": "https://x/c"},
			},
		},
	}

	events := n.TransformAll(ctx, batches)
	require.Len(t, events, 3)
	// source order, then record order, duplicate url dropped
	require.Equal(t, "A", events[0].Title)
	require.Equal(t, "B", events[1].Title)
	require.Equal(t, "C", events[2].Title)
	require.Equal(t, "Visit Greece", events[0].Source)
	require.Equal(t, "More.com", events[2].Source)
}

func TestTransformAllCrossSourceNotMerged(t *testing.T) {
	n := testNormalizer()

	events := n.TransformAll(context.Background(), []SourceBatch{
		{Source: "a", Records: []RawRecord{{"title": "same", "url": "https://x/1"}}},
		{Source: "b", Records: []RawRecord{{"title": "same", "url": "https://x/1"}}},
	})
	require.Len(t, events, 2)
	require.NotEqual(t, events[0].ID, events[1].ID)
	require.NotEqual(t, events[0].Source, events[1].Source)
}

func TestTransformAllIdempotent(t *testing.T) {
	n := testNormalizer()

	batches := []SourceBatch{
		{
			Source: "culture",
			Records: []RawRecord{
				{"title": "X", "url": "https://x/1", "date": "17 Jan 2026"},
				{"title": "Y", "date": "no year here"},
				{"title": "Z", "url": "https://x/2", "price": "12€"},
			},
		},
	}

	first := n.TransformAll(context.Background(), batches)
	second := n.TransformAll(context.Background(), batches)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("runs differ (-first +second):\n%s", diff)
	}
}

func TestTransformAllURLLessAlwaysNew(t *testing.T) {
	n := testNormalizer()

	events := n.TransformAll(context.Background(), []SourceBatch{
		{Source: "s", Records: []RawRecord{
			{"title": "no url 1"},
			{"title": "no url 2"},
		}},
	})
	require.Len(t, events, 2)
	require.NotEmpty(t, events[0].ID)
	require.NotEqual(t, events[0].ID, events[1].ID)
}

func TestTransformAllEmptySource(t *testing.T) {
	n := testNormalizer()

	events := n.TransformAll(context.Background(), []SourceBatch{
		{Source: "empty"},
		{Source: "s", Records: []RawRecord{{"title": "only", "url": "https://x/only"}}},
	})
	require.Len(t, events, 1)
}

func TestStableIDStability(t *testing.T) {
	require.Equal(t, StableID("more", "https://x/1"), StableID("more", "https://x/1"))
	require.NotEqual(t, StableID("more", "https://x/1"), StableID("culture", "https://x/1"))
	require.Len(t, StableID("more", "https://x/1"), 16)
}
