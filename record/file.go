package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/pathviz/logger"
)

// FileStore keeps all records as one JSON array in a file. Writes go to a
// temporary file in the same directory that is then renamed over the target.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read()
}

func (f *FileStore) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return err
	}

	return f.write(upsert(all, r))
}

func (f *FileStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return err
	}
	out, ok := remove(all, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return f.write(out)
}

func (f *FileStore) read() ([]Record, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("record: read %s: %w", f.path, err)
	}

	var all []Record
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("record: decode %s: %w", f.path, err)
	}
	if all == nil {
		all = []Record{}
	}

	return all, nil
}

func (f *FileStore) write(all []Record) error {
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("record: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".graphs-*.json")
	if err != nil {
		return fmt.Errorf("record: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("record: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("record: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("record: rename to %s: %w", f.path, err)
	}
	logger.Debug("graph file written", "path", f.path, "records", len(all))

	return nil
}
