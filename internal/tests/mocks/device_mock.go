package mocks

import (
	"errors"
	"sync"
)

// MemoryStorage is an in-memory LocalStorage. Set Unavailable to emulate a
// context without device storage, FailWrites to make SetItem fail.
type MemoryStorage struct {
	Unavailable bool
	FailWrites  bool

	mu     sync.Mutex
	Items  map[string]string
	Writes []string
}

func NewMemoryStorage(items map[string]string) *MemoryStorage {
	if items == nil {
		items = make(map[string]string)
	}
	return &MemoryStorage{Items: items}
}

func (m *MemoryStorage) Available() bool { return !m.Unavailable }

func (m *MemoryStorage) GetItem(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Items[key]
	return v, ok
}

func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("quota exceeded")
	}
	m.Items[key] = value
	m.Writes = append(m.Writes, key+"="+value)
	return nil
}

// DocumentMock records attribute assignments in order.
type DocumentMock struct {
	mu    sync.Mutex
	Calls []string
	Attrs map[string]string
}

func (d *DocumentMock) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Attrs == nil {
		d.Attrs = make(map[string]string)
	}
	d.Attrs[name] = value
	d.Calls = append(d.Calls, name+"="+value)
}
