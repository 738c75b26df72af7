package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MarshalJSON renders data as indented JSON with a trailing newline.
// Map keys come out sorted, so equal values always produce equal bytes.
func MarshalJSON(data interface{}) ([]byte, error) {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	return append(bytes, '\n'), nil
}

// SaveJSON marshals the data and replaces the file at path with it. The data
// is written to a temporary file in the same directory and renamed over the
// target, so a failed write never leaves a truncated file behind.
func SaveJSON(path string, data interface{}) error {
	bytes, err := MarshalJSON(data)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
