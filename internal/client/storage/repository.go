// Package storage is the profile-scoped key-value table backing the session
// store. Values are plain strings; nothing is encrypted or expired.
package storage

import "context"

type Repository interface {
	// Get returns ok == false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}
