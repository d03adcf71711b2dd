// Package kvstore holds the key-value stores that back users, pending
// signups, sessions and appointments. Values are opaque JSON documents; the
// stores never interpret them.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kvstore: key not found")

// KeyValueStore is a flat string-keyed store. Writes replace the whole value.
// Implementations do not offer transactions; read-modify-write cycles built
// on top of them can interleave.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete succeeds when the key does not exist.
	Delete(ctx context.Context, key string) error
	Close() error
}
