package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// LocalStorage is the device-local key/value medium. Some environments have
// none; callers check Available and skip silently.
type LocalStorage interface {
	Available() bool
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
}

// Document is the root UI element the styling layer reads attributes from.
type Document interface {
	SetAttribute(name, value string)
}

// NoopStorage stands in when there is no device storage (headless runs).
type NoopStorage struct{}

func (NoopStorage) Available() bool { return false }
func (NoopStorage) GetItem(string) (string, bool) { return "", false }
func (NoopStorage) SetItem(string, string) error { return nil }

type NoopDocument struct{}

func (NoopDocument) SetAttribute(string, string) {}

// FileStorage keeps a flat JSON object of strings on disk.
type FileStorage struct {
	path   string
	mu     sync.Mutex
	items  map[string]string
	loaded bool
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Available() bool { return true }

func (s *FileStorage) GetItem(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(); err != nil {
		return "", false
	}
	v, ok := s.items[key]
	return v, ok
}

func (s *FileStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(); err != nil {
		// Unreadable file: start over rather than refuse every write.
		s.items = make(map[string]string)
		s.loaded = true
	}
	s.items[key] = value
	return s.saveLocked()
}

func (s *FileStorage) loadLocked() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.items = make(map[string]string)
		s.loaded = true
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read local storage")
	}
	items := make(map[string]string)
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "decode local storage")
	}
	s.items = items
	s.loaded = true
	return nil
}

func (s *FileStorage) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return errors.Wrap(err, "create local storage dir")
	}
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.Wrap(err, "write local storage")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "replace local storage")
}

// RuntimeDocument sets attributes on document.documentElement of the Wails
// window. Attributes set before the DOM is ready are replayed by DomReady.
type RuntimeDocument struct {
	mu    sync.Mutex
	ctx   context.Context
	attrs map[string]string
}

func NewRuntimeDocument() *RuntimeDocument {
	return &RuntimeDocument{attrs: make(map[string]string)}
}

func (d *RuntimeDocument) DomReady(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctx = ctx

	names := make([]string, 0, len(d.attrs))
	for name := range d.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		runtime.WindowExecJS(ctx, setAttributeJS(name, d.attrs[name]))
	}
}

func (d *RuntimeDocument) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs[name] = value
	if d.ctx != nil {
		runtime.WindowExecJS(d.ctx, setAttributeJS(name, value))
	}
}

func setAttributeJS(name, value string) string {
	n, _ := json.Marshal(name)
	v, _ := json.Marshal(value)
	return fmt.Sprintf("document.documentElement.setAttribute(%s, %s);", n, v)
}
