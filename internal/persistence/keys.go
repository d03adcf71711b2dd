// Package persistence implements the repository contracts on top of a
// kvstore.KeyValueStore. Every write replaces the whole stored document.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medical-appointment-service/internal/adapters/kvstore"
)

// Store keys. users and appointments are shared by every session; tempUser
// and loggedInUser are scoped by NamespacedKey.
const (
	KeyUsers        = "users"
	KeyTempUser     = "tempUser"
	KeyLoggedInUser = "loggedInUser"
	KeyAppointments = "appointments"
)

// NamespacedKey scopes a per-session key. The empty namespace is the default
// session and maps to the bare key.
func NamespacedKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return "session:" + namespace + ":" + key
}

// loadJSON decodes the value at key into dst. found is false when the key is
// absent, in which case dst is untouched.
func loadJSON(ctx context.Context, store kvstore.KeyValueStore, key string, dst any) (found bool, err error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store kvstore.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
