// Package store provides the key-value store client backing the board.
//
// The board keeps two hash maps, one per entity collection, with the entity
// id as the hash field and a JSON record as the value. Store exposes only
// the hash primitives the collection services need, so tests can substitute
// an in-memory implementation.
package store

import "context"

// Hash keys for the two collections.
const (
	TasksKey   = "kanban:tasks"
	ColumnsKey = "kanban:columns"
)

// Store is the minimal hash-map surface of the key-value store.
type Store interface {
	// HGetAll returns all field/value pairs of the hash at key.
	// A missing key yields an empty map, not an error.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HGet returns the value of a single field. Returns ErrFieldNotFound
	// when the field (or the whole hash) is absent.
	HGet(ctx context.Context, key, field string) (string, error)

	// HSet writes a single field.
	HSet(ctx context.Context, key, field, value string) error

	// HDel removes a single field and reports how many fields were removed
	// (0 when the field was absent).
	HDel(ctx context.Context, key, field string) (int64, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
