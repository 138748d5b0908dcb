package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore persists keys as a single JSON object on disk. It is the default
// backend: one operator, one file, no external service.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// NewFileStore opens or creates the store at path. A missing file starts the
// store empty; a present file must parse as a JSON string map.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: make(map[string]string)}
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if err := json.Unmarshal(buf, &fs.data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return fs, nil
}

// Get implements Store.
func (fs *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.data[key]
	return v, ok, nil
}

// Set implements Store. The whole map is rewritten on every call, mirroring
// the full-snapshot persistence model of the callers. A failed write rolls the
// in-memory value back, so Get never serves a value that is not on disk.
func (fs *FileStore) Set(_ context.Context, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev, had := fs.data[key]
	fs.data[key] = value
	if err := fs.flush(); err != nil {
		if had {
			fs.data[key] = prev
		} else {
			delete(fs.data, key)
		}
		return err
	}
	return nil
}

// Delete implements Store. Like Set, a failed write restores the previous
// value.
func (fs *FileStore) Delete(_ context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev, ok := fs.data[key]
	if !ok {
		return nil
	}
	delete(fs.data, key)
	if err := fs.flush(); err != nil {
		fs.data[key] = prev
		return err
	}
	return nil
}

// flush writes the map to a temp file and renames it into place so a crashed
// write never leaves a truncated store. Callers must hold mu.
func (fs *FileStore) flush() error {
	buf, err := json.Marshal(fs.data)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
