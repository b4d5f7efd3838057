// Package backend selects and constructs the record store implementation.
package backend

import (
	"vendas/internal/storage"
)

// Type represents the kind of record store backing the application.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   storage.RecordStore
	Cleanup CleanupFunc
}

// Config holds configuration for store creation.
type Config struct {
	Type         Type
	SQLiteDBPath string
}
