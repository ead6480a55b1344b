package store

import "context"

// Memory is an in-process KV. It is not safe for concurrent use.
type Memory struct {
	data map[string]string

	// Err, when set, is returned by every Set call.
	Err error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

// Set overwrites the value stored under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.data[key] = value
	return nil
}
