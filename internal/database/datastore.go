package database

import "context"

// KeyValueStore is the persistence contract the task store depends on.
// Implementations replace a key's value atomically: after a failed Put the
// previous value is still what Get returns.
type KeyValueStore interface {
	// Get returns the value for key. found is false when the key was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Put replaces the value for key
	Put(ctx context.Context, key, value string) error
	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
