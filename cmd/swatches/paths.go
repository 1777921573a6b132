package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultPresetsPath is the user catalog picked up when --presets is not given.
// It returns an empty path when the file does not exist.
func defaultPresetsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "swatches", "presets.yaml")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
