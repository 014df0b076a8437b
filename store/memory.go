package store

import (
	"slices"
	"sync"
)

// Memory is an in-memory Storage. Its contents live as long as the process.
type Memory struct {
	values map[string][]byte
	mu     sync.Mutex
}

// NewMemory returns an empty in-memory session namespace.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
	}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	return slices.Clone(v), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = slices.Clone(value)

	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.values)

	return nil
}

func (m *Memory) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.values)
}

// MemoryDB is an in-memory DB used when the database file cannot be opened.
type MemoryDB struct {
	sessions map[string]*Memory
	settings *Memory
	mu       sync.Mutex
}

// NewMemoryDB returns an empty in-memory database.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		sessions: make(map[string]*Memory),
		settings: NewMemory(),
	}
}

func (d *MemoryDB) Session(id string) Storage {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sessions[id]
	if !ok {
		s = NewMemory()
		d.sessions[id] = s
	}

	return s
}

func (d *MemoryDB) Sessions() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]string, 0, len(d.sessions))

	for id, s := range d.sessions {
		if s.len() > 0 {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids, nil
}

func (d *MemoryDB) EndSession(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s, ok := d.sessions[id]; ok {
		_ = s.Clear()
	}

	delete(d.sessions, id)

	return nil
}

func (d *MemoryDB) Setting(key string) ([]byte, error) {
	return d.settings.Get(key)
}

func (d *MemoryDB) SetSetting(key string, value []byte) error {
	return d.settings.Set(key, value)
}

func (d *MemoryDB) Close() error {
	return nil
}
