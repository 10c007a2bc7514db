package localstore

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
)

const (
	// DefaultWriteDelay is the quiescence window before a coalesced durable write.
	DefaultWriteDelay = 300 * time.Millisecond

	// cacheTTL is how long a read is satisfied from memory without touching
	// durable storage.
	cacheTTL = 5 * time.Second
)

type cacheEntry struct {
	value     json.RawMessage
	writtenAt time.Time
}

// pendingWrite holds the coalesced durable write for one key. Identity of the
// struct pointer doubles as the cancellation token: a timer that fires after
// its pendingWrite was replaced or flushed writes nothing.
type pendingWrite struct {
	timer *time.Timer
	value json.RawMessage
}

// DebouncedStore is the single choke point for all client-local persistent
// writes. Rapid successive updates to the same key produce at most one
// durable write, and the in-memory cache is always at least as fresh as
// durable storage.
type DebouncedStore struct {
	durable ports.DurableKV
	logger  *slog.Logger
	delay   time.Duration

	mu      sync.Mutex
	cache   map[string]cacheEntry
	pending map[string]*pendingWrite

	now func() time.Time // swappable for tests
}

var _ ports.LocalKV = (*DebouncedStore)(nil)

// NewDebouncedStore wraps a durable store with debounced writes and a
// read-through cache.
func NewDebouncedStore(durable ports.DurableKV, delay time.Duration, logger *slog.Logger) *DebouncedStore {
	if delay <= 0 {
		delay = DefaultWriteDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DebouncedStore{
		durable: durable,
		logger:  logger,
		delay:   delay,
		cache:   make(map[string]cacheEntry),
		pending: make(map[string]*pendingWrite),
		now:     time.Now,
	}
}

// SetDebounced updates the in-memory cache immediately and schedules a durable
// write after the quiescence delay. A pending write for the same key is
// cancelled and replaced, so the latest value wins. Never blocks, never fails
// the caller; marshal failures are logged and the key is left untouched.
func (s *DebouncedStore) SetDebounced(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Failed to serialize value for debounced write",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = cacheEntry{value: raw, writtenAt: s.now()}

	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}

	pw := &pendingWrite{value: raw}
	pw.timer = time.AfterFunc(s.delay, func() {
		s.commitPending(key, pw)
	})
	s.pending[key] = pw
}

// commitPending performs the durable write for a fired timer, unless the
// pending entry was replaced or flushed in the meantime.
func (s *DebouncedStore) commitPending(key string, pw *pendingWrite) {
	s.mu.Lock()
	current, ok := s.pending[key]
	if !ok || current != pw {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	if err := s.durable.Put(key, pw.value); err != nil {
		s.logger.Error("Debounced durable write failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}

// SetImmediate bypasses debouncing: the value is written synchronously to both
// cache and durable storage. Any pending debounced write for the key is
// superseded.
func (s *DebouncedStore) SetImmediate(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Failed to serialize value for immediate write",
			slog.String("key", key), slog.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{value: raw, writtenAt: s.now()}
	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if err := s.durable.Put(key, raw); err != nil {
		s.logger.Error("Immediate durable write failed",
			slog.String("key", key), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Get returns the cached value while the cache entry is younger than the TTL,
// otherwise reads through to durable storage and repopulates the cache. Every
// failure mode (missing key, decode error, storage error) collapses to
// apperrors.ErrNotFound so callers fall back to their defaults.
func (s *DebouncedStore) Get(key string, dest any) error {
	s.mu.Lock()
	if e, ok := s.cache[key]; ok && s.now().Sub(e.writtenAt) < cacheTTL {
		raw := e.value
		s.mu.Unlock()
		if err := json.Unmarshal(raw, dest); err != nil {
			s.logger.Warn("Failed to decode cached value",
				slog.String("key", key), slog.String("error", err.Error()))
			return apperrors.ErrNotFound
		}
		return nil
	}
	s.mu.Unlock()

	raw, err := s.durable.Get(key)
	if err != nil {
		return apperrors.ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("Failed to decode stored value",
			slog.String("key", key), slog.String("error", err.Error()))
		return apperrors.ErrNotFound
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{value: raw, writtenAt: s.now()}
	s.mu.Unlock()
	return nil
}

// Remove cancels any pending debounced write, evicts the cache entry and
// deletes the durable entry. Idempotent; durable failures are logged only.
func (s *DebouncedStore) Remove(key string) {
	s.mu.Lock()
	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
		delete(s.pending, key)
	}
	delete(s.cache, key)
	s.mu.Unlock()

	if err := s.durable.Delete(key); err != nil {
		s.logger.Error("Failed to delete durable entry",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}

// FlushPendingWrites cancels every outstanding timer and performs the durable
// write for each using the latest value. An update accepted by SetDebounced
// is durable after this returns even if its delay window never elapsed.
func (s *DebouncedStore) FlushPendingWrites() {
	s.mu.Lock()
	flush := make(map[string]json.RawMessage, len(s.pending))
	for key, pw := range s.pending {
		pw.timer.Stop()
		flush[key] = pw.value
		delete(s.pending, key)
	}
	s.mu.Unlock()

	for key, raw := range flush {
		if err := s.durable.Put(key, raw); err != nil {
			s.logger.Error("Flush durable write failed",
				slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

// PendingWriteCount reports scheduled-but-unwritten keys. Introspection hook.
func (s *DebouncedStore) PendingWriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
