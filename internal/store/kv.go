package store

import "fmt"

// KV is the key-value text store every collection is persisted through.
// Implementations must treat a missing key as (nil, false, nil), not an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
}

// DecodeError reports a stored collection that no longer parses as JSON.
// Unlike plain storage failures, decode failures are returned to the caller:
// silently propagating half-read records downstream is worse than failing.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode collection %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
