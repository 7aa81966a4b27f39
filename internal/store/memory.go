package store

import (
	"context"
	"sync"
)

type memColl struct {
	vals  map[string][]byte
	order []string
}

// Memory keeps everything in process. Used by tests and the demo mode.
type Memory struct {
	mu    sync.RWMutex
	colls map[string]*memColl
}

func NewMemory() *Memory {
	return &Memory{colls: make(map[string]*memColl)}
}

func (m *Memory) Get(_ context.Context, coll, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.colls[coll]
	if !ok {
		return nil, ErrNotFound
	}
	v, ok := c.vals[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (m *Memory) Insert(_ context.Context, coll, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.colls[coll]
	if !ok {
		c = &memColl{vals: make(map[string][]byte)}
		m.colls[coll] = c
	}
	if _, taken := c.vals[key]; taken {
		return ErrConflict
	}
	c.vals[key] = clone(val)
	c.order = append(c.order, key)
	return nil
}

func (m *Memory) Replace(_ context.Context, coll, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.colls[coll]
	if !ok {
		return ErrNotFound
	}
	if _, ok := c.vals[key]; !ok {
		return ErrNotFound
	}
	c.vals[key] = clone(val)
	return nil
}

func (m *Memory) Delete(_ context.Context, coll, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.colls[coll]
	if !ok {
		return ErrNotFound
	}
	if _, ok := c.vals[key]; !ok {
		return ErrNotFound
	}
	delete(c.vals, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) Scan(ctx context.Context, coll string, fn func(key string, val []byte) error) error {
	// snapshot so fn may call back into the backend
	m.mu.RLock()
	c, ok := m.colls[coll]
	if !ok {
		m.mu.RUnlock()
		return nil
	}
	keys := make([]string, len(c.order))
	vals := make([][]byte, len(c.order))
	for i, k := range c.order {
		keys[i] = k
		vals[i] = clone(c.vals[k])
	}
	m.mu.RUnlock()

	for i := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(keys[i], vals[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) Close() error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
