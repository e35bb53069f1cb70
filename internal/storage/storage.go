// Package storage provides the durable string key/value stores used to keep
// user preferences (such as the appearance mode) across sessions.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable is returned when the backend cannot be used at all
	// (disabled, closed, or failed to open).
	ErrUnavailable = errors.New("storage: unavailable")
)

// Storage is a synchronous, local key/value store of string values.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Close() error
}

// Kind selects a storage backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

const (
	fileName   = "prefs.toml"
	sqliteName = "prefs.db"
)

// Open creates the backend of the given kind rooted at dir.
// The directory is created when missing.
func Open(kind Kind, dir string) (Storage, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile, KindSQLite:
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}

	if dir == "" {
		return nil, fmt.Errorf("storage directory not set: %w", ErrUnavailable)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	if kind == KindSQLite {
		return NewSQLite(filepath.Join(dir, sqliteName))
	}
	return NewFile(filepath.Join(dir, fileName))
}

// Kinds returns the accepted backend names.
func Kinds() []string {
	return []string{string(KindFile), string(KindSQLite), string(KindMemory)}
}

// Memory keeps values for the lifetime of the process only.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Disabled stands in when no backend could be opened. Every call fails with
// ErrUnavailable.
type Disabled struct{}

func (Disabled) Get(string) (string, error) { return "", ErrUnavailable }
func (Disabled) Set(string, string) error   { return ErrUnavailable }
func (Disabled) Close() error               { return nil }
