package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(contents), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFeed(t, dir, "more.json", `[
		{"title": "Event A", "url": "https://x/a", "price": 10},
		{"title": "Event B", "images": ["https://x/b.jpg"]}
	]`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Event A", records[0].GetString("title"))
	require.Equal(t, "10", records[0].GetString("price"))
	require.Equal(t, []string{"https://x/b.jpg"}, records[1].GetStringList("images"))
}

func TestLoadSourcesSkipsBrokenFeeds(t *testing.T) {
	dir := t.TempDir()
	good := writeFeed(t, dir, "good.json", `[{"title": "ok"}]`)
	broken := writeFeed(t, dir, "broken.json", `{not json`)

	batches := LoadSources(context.Background(), []Source{
		{Name: "good", File: good},
		{Name: "missing", File: filepath.Join(dir, "nope.json")},
		{Name: "broken", File: broken},
	})

	require.Len(t, batches, 1)
	require.Equal(t, "good", batches[0].Source)
	require.Len(t, batches[0].Records, 1)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title": "remote", "url": "https://x/r"}]`))
	}))
	defer server.Close()

	records, err := Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "remote", records[0].GetString("title"))
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	require.Error(t, err)
}
