// internal/kv/kv.go
package kv

import "errors"

// ErrNotFound indicates the requested key has never been written (or was deleted).
var ErrNotFound = errors.New("kv: key not found")

// Store is a string-keyed byte store. Every collection in Eventide lives under
// a single key as one serialized JSON array; reads and writes are always
// whole-value, never partial.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
