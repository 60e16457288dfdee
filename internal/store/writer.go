package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Writer appends records to a JSON array store. Every append rewrites the
// whole file through a temp file and rename, so concurrent readers never
// observe a partial write.
type Writer struct {
	path string
	log  *zap.Logger
}

func NewWriter(path string, log *zap.Logger) *Writer {
	return &Writer{path: path, log: log}
}

// Path returns the file this writer appends to.
func (w *Writer) Path() string { return w.path }

// Ensure makes the store usable: the parent directory exists and the file
// holds a JSON array. Missing files are created; empty, invalid or
// non-array contents are reset to [].
func (w *Writer) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := os.ReadFile(w.path)
	if os.IsNotExist(err) {
		w.log.Info("creating store file", zap.String("path", w.path))
		return w.replace([]byte("[]"))
	}
	if err != nil {
		return fmt.Errorf("read store: %w", err)
	}
	if !isJSONArray(data) {
		w.log.Warn("store did not hold a JSON array, resetting", zap.String("path", w.path))
		return w.replace([]byte("[]"))
	}
	return nil
}

// Append adds one record to the end of the store array.
func (w *Writer) Append(record any) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	records, err := w.load()
	if err != nil {
		return fmt.Errorf("read store: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	records = append(records, json.RawMessage(data))

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize store: %w", err)
	}
	return w.replace(out)
}

// load reads the current array. A missing file and non-array contents both
// start fresh; any other read failure aborts the append, so an unreadable
// store keeps its records.
func (w *Writer) load() ([]json.RawMessage, error) {
	data, err := os.ReadFile(w.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var records []json.RawMessage
	if !isJSONArray(data) || json.Unmarshal(data, &records) != nil {
		w.log.Warn("store did not hold a JSON array, starting fresh", zap.String("path", w.path))
		return nil, nil
	}
	return records, nil
}

// replace swaps the store contents atomically.
func (w *Writer) replace(data []byte) error {
	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("swap store: %w", err)
	}
	return nil
}

// isJSONArray reports whether data is a valid JSON document whose top-level
// value is an array. "null" decodes into a slice without complaint, so a
// plain Unmarshal check is not enough here.
func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '[' && json.Valid(trimmed)
}
