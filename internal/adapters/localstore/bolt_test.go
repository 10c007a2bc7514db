package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokonihub/sokoni_gateway/internal/adapters/localstore"
	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
)

func newTestBolt(t *testing.T) *localstore.BoltStore {
	t.Helper()
	s, err := localstore.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltStore_PutGet(t *testing.T) {
	s := newTestBolt(t)

	require.NoError(t, s.Put("k1", []byte(`{"a":1}`)))

	got, err := s.Get("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestBoltStore_GetMissing(t *testing.T) {
	s := newTestBolt(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBoltStore_PutReplaces(t *testing.T) {
	s := newTestBolt(t)

	require.NoError(t, s.Put("k", []byte(`1`)))
	require.NoError(t, s.Put("k", []byte(`2`)))

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`2`), got)
}

func TestBoltStore_DeleteIdempotent(t *testing.T) {
	s := newTestBolt(t)

	require.NoError(t, s.Put("k", []byte(`1`)))
	require.NoError(t, s.Delete("k"))

	_, err := s.Get("k")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Second delete of a gone key still succeeds.
	assert.NoError(t, s.Delete("k"))
}
