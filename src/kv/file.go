package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v2"
)

var ErrInvalidJSON = errors.New("value is not valid JSON")

// File persists every key as JSON text inside a single YAML document.
type File struct {
	mu   sync.Mutex
	path string
}

// OpenFile prepares a store at path. The file is created on the first Set.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	f := &File{path: path}
	if _, err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (json.RawMessage, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := items[key]
	if !ok {
		return nil, false, nil
	}
	return json.RawMessage(v), true, nil
}

func (f *File) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return ErrInvalidJSON
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	items[key] = string(value)
	return f.save(items)
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return f.save(items)
}

func (f *File) load() (map[string]string, error) {
	items := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store %s: %w", f.path, err)
	}

	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("could not parse store %s: %w", f.path, err)
	}
	return items, nil
}

func (f *File) save(items map[string]string) error {
	data, err := yaml.Marshal(items)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".kv-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
