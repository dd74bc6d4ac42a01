package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/lexis/pkg/lexis"
)

// WriteScene encodes s as JSON and writes it to w. The output can be read
// back with [ReadScene].
func WriteScene(s lexis.Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadScene decodes a scene written by [WriteScene]. Label values come
// back as JSON numbers or strings.
func ReadScene(r io.Reader) (lexis.Scene, error) {
	var s lexis.Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return lexis.Scene{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// ExportScene writes s to a JSON file at path.
func ExportScene(s lexis.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteScene(s, f)
}

// WriteArtifact writes data to path, creating parent directories.
func WriteArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
