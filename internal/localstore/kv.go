// Package localstore provides the durable key-value storage the client keeps
// between runs: the active session id and the recent-promotions list. The
// interface is injectable so tests can substitute an in-memory store.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore persists all keys as a single JSON object. Reads and writes go
// through the file on every call; all access happens on the UI goroutine, so
// there is no locking.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(key string) (string, bool) {
	values := s.load()
	v, ok := values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	values := s.load()
	values[key] = value
	return s.save(values)
}

func (s *FileStore) Delete(key string) error {
	values := s.load()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// load treats a missing or corrupt file as empty. Local data is a cache of
// convenience state, never a source of errors for the user.
func (s *FileStore) load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil || values == nil {
		return map[string]string{}
	}
	return values
}

func (s *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemStore is the in-memory substitute used by tests.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
