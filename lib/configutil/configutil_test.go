package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Database string `json:"database"`
	Sources  []struct {
		Name string `json:"name"`
		File string `json:"file"`
	} `json:"sources"`
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "events.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "events.json5")
	err := os.WriteFile(base, []byte(`{
		// base config
		database: "events.db",
		sources: [{name: "more", file: "more.json"}],
	}`), 0o644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "events.local.json5"), []byte(`{
		database: "local.db",
	}`), 0o644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, "local.db", config.Database)
	require.Len(t, config.Sources, 1)
	require.Equal(t, "more", config.Sources[0].Name)
}
