// Package storage provides raw document stores for the monster catalog.
// A store holds exactly one document; it knows nothing about its contents.
package storage

//go:generate mockgen -destination=mock/mock_store.go -package=storagemock github.com/KirkDiggler/rpg-encounters/internal/storage Store

import (
	"context"
)

// Backend names a Store implementation
type Backend string

// Supported backends
const (
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendSQLite Backend = "sqlite"
)

// Backends lists every supported backend name
var Backends = []string{string(BackendFile), string(BackendRedis), string(BackendSQLite)}

// Store reads and writes a single document
type Store interface {
	// Read returns the document bytes. A document that has never been
	// written reads as empty with no error.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the document. Readers observe either the previous
	// document or the new one, never a partial write.
	Write(ctx context.Context, data []byte) error
}
