package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// reads one config layer; a missing file is reported through the bool,
// not as an error
func readLayer[T any](path string, out *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// ReadConfig loads `name` (which must carry a file extension) and then,
// when present, merges `<name>.local.<ext>` on top of it. Local
// overrides win. Returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T

	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))

	foundBase, err := readLayer(name, &out)
	if err != nil {
		return out, err
	}

	localPath := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefixname, ext))
	var override T
	foundLocal, err := readLayer(localPath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !foundBase && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks up from the working directory towards the
// filesystem root until ReadConfig finds a matching file.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	root, err := filepath.Abs("/")
	if err != nil {
		return defaultOut, err
	}
	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for current != root {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if os.IsNotExist(err) {
			current = filepath.Join(current, "..")
			continue
		}
		if err != nil {
			return defaultOut, err
		}
		return config, nil
	}

	return defaultOut, os.ErrNotExist
}
