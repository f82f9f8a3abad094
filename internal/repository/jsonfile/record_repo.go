package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"ravepayments/internal/domain"
)

// recordRepository stores records as a single JSON array file. Every append
// reads, extends, and rewrites the whole file; fine for the small record
// counts of one event. The mutex only serializes writers within this process;
// a second process on the same file can still interleave.
type recordRepository struct {
	path string
	mu   sync.Mutex
}

// NewRecordRepository returns a RecordRepository backed by the JSON file at
// path. The file is created on first append.
func NewRecordRepository(path string) domain.RecordRepository {
	return &recordRepository{path: path}
}

func (r *recordRepository) Append(ctx context.Context, record *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *recordRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *recordRepository) load() ([]*domain.Record, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Record{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(raw) == 0 {
		return []*domain.Record{}, nil
	}
	var records []*domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return records, nil
}
