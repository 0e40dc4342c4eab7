// Package archive serializes the full game state to a transportable JSON
// document for backup and restore.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gamedo/internal/storage"
)

const FormatVersion = "1.0.0"

// Document is the export format: both collections plus provenance metadata.
// Timestamps round-trip as RFC 3339 via encoding/json.
type Document struct {
	Tasks      []storage.Task    `json:"tasks"`
	Progress   *storage.Progress `json:"progress"`
	ExportDate time.Time         `json:"exportDate"`
	Version    string            `json:"version"`
}

var (
	ErrMissingTasks    = errors.New("document has no tasks field")
	ErrMissingProgress = errors.New("document has no progress field")
)

// Encode builds the export document.
func Encode(tasks []storage.Task, progress *storage.Progress, exportDate time.Time) ([]byte, error) {
	if tasks == nil {
		tasks = []storage.Task{}
	}
	doc := Document{
		Tasks:      tasks,
		Progress:   progress,
		ExportDate: exportDate,
		Version:    FormatVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode archive: %w", err)
	}
	return data, nil
}

// Decode parses and validates an export document. Documents missing either
// collection are rejected before any of the data is handed back.
func Decode(data []byte) (*Document, error) {
	var probe struct {
		Tasks    json.RawMessage `json:"tasks"`
		Progress json.RawMessage `json:"progress"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}
	if len(probe.Tasks) == 0 || string(probe.Tasks) == "null" {
		return nil, ErrMissingTasks
	}
	if len(probe.Progress) == 0 || string(probe.Progress) == "null" {
		return nil, ErrMissingProgress
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}
	return &doc, nil
}

// WriteFile exports to path.
func WriteFile(path string, tasks []storage.Task, progress *storage.Progress, exportDate time.Time) error {
	data, err := Encode(tasks, progress, exportDate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	return nil
}

// ReadFile imports from path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	return Decode(data)
}
