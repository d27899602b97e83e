// Package output persists envelopes as JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/educontent/internal/content"
)

// Writer writes envelopes as indented UTF-8 JSON. Non-ASCII and HTML
// characters are written verbatim.
type Writer struct {
	Indent   string
	FileMode os.FileMode
}

// NewWriter returns a Writer using two-space indentation.
func NewWriter() *Writer {
	return &Writer{Indent: "  ", FileMode: 0o644}
}

// Encode returns the serialized envelope.
func (w *Writer) Encode(env *content.Envelope) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.Indent)
	if err := enc.Encode(env); err != nil {
		return nil, fmt.Errorf("encode %s envelope: %w", env.Type, err)
	}
	return buf.Bytes(), nil
}

// Write serializes env to path, creating parent directories as needed.
func (w *Writer) Write(env *content.Envelope, path string) error {
	data, err := w.Encode(env)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, w.FileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
