package ports

// DurableKV is the durable local key/value store underneath the debounced
// layer. Implementations map missing keys to apperrors.ErrNotFound.
type DurableKV interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	Close() error
}

// LocalKV is the write-coalescing, read-through-cached store every stateful
// feature persists through. Values are JSON-marshalled on write and
// unmarshalled into dest on read.
type LocalKV interface {
	// SetDebounced updates the in-memory cache immediately and schedules a
	// coalesced durable write. It never blocks and never fails the caller.
	SetDebounced(key string, value any)

	// SetImmediate bypasses debouncing for writes that must be durable before
	// the caller proceeds.
	SetImmediate(key string, value any) error

	// Get satisfies reads from memory within the cache TTL, otherwise reads
	// through to durable storage. Any miss or decode failure surfaces as
	// apperrors.ErrNotFound.
	Get(key string, dest any) error

	// Remove cancels any pending write, evicts the cache entry and deletes
	// the durable entry. Idempotent.
	Remove(key string)

	// FlushPendingWrites cancels all outstanding timers and performs their
	// durable writes eagerly. Must run before process teardown.
	FlushPendingWrites()
}
