// Package kv provides the durable key-value storage used to persist the
// authenticated session across restarts.
package kv

// Store is a flat string key-value store. Get reports presence rather than
// returning an error for missing keys; Delete on a missing key is a no-op.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
