package record

import (
	"context"
	"fmt"
	"sync"
)

// Store persists graph records. Save inserts or replaces by ID; Load returns
// records in first-saved order; Delete reports ErrNotFound for unknown IDs.
type Store interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, r Record) error
	Delete(ctx context.Context, id string) error
}

// Find loads s and returns the record with the given ID.
func Find(ctx context.Context, s Store, id string) (Record, error) {
	all, err := s.Load(ctx)
	if err != nil {
		return Record{}, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}

	return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore returns a store holding a copy of seed.
func NewMemoryStore(seed ...Record) *MemoryStore {
	return &MemoryStore{records: append([]Record(nil), seed...)}
}

func (m *MemoryStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, len(m.records))
	copy(out, m.records)

	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = upsert(m.records, r)

	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out, ok := remove(m.records, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	m.records = out

	return nil
}

func upsert(records []Record, r Record) []Record {
	for i := range records {
		if records[i].ID == r.ID {
			records[i] = r
			return records
		}
	}

	return append(records, r)
}

func remove(records []Record, id string) ([]Record, bool) {
	for i := range records {
		if records[i].ID == id {
			return append(records[:i], records[i+1:]...), true
		}
	}

	return records, false
}
