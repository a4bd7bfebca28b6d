package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"newsagent/models"
)

type SnapshotWriter interface {
	WriteFile(path string, items []models.NewsItem) error
}

type snapshotWriter struct {
	log *zap.Logger
}

func NewSnapshotWriter(log *zap.Logger) SnapshotWriter {
	return &snapshotWriter{log: log}
}

func (s *snapshotWriter) WriteFile(path string, items []models.NewsItem) error {
	data, err := encodeSnapshot(items)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.log.Info("snapshot written", zap.String("path", path), zap.Int("items", len(items)))
	return nil
}

// encodeSnapshot renders items as two-space-indented JSON with HTML escaping
// off, so Polish titles and URLs stay readable in the file. A nil slice
// encodes as an empty array, never null.
func encodeSnapshot(items []models.NewsItem) ([]byte, error) {
	if items == nil {
		items = []models.NewsItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
