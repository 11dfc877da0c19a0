// Package report exports analysis results as JSON and renders console summaries.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// WriteJSON encodes v as indented JSON. With compress set the stream is
// snappy-framed, readable by snappy.NewReader and the ingest package.
func WriteJSON(w io.Writer, v any, compress bool) error {
	if !compress {
		return encode(w, v)
	}

	sw := snappy.NewBufferedWriter(w)
	if err := encode(sw, v); err != nil {
		sw.Close()
		return err
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("flush snappy stream: %w", err)
	}
	return nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteFile writes v to path through a temporary file in the same directory,
// so readers never observe a partial result.
func WriteFile(path string, v any, compress bool) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".netcentrality-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteJSON(tmp, v, compress); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
