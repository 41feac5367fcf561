package badgerstore

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/session"
	"todos/internal/todo"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sample() todo.Snapshot {
	return todo.Snapshot{Lists: []todo.ListSnapshot{
		{ID: 1, Title: "Home", Tasks: []todo.TaskSnapshot{{ID: 2, Title: "Milk", Done: true}}},
		{ID: 3, Title: "Work", Tasks: []todo.TaskSnapshot{}},
	}}
}

func TestStore_LoadUnknownSessionIsEmpty(t *testing.T) {
	st := openInMemory(t)

	snap, err := st.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, todo.EmptySnapshot(), snap)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	st := openInMemory(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "alice", sample()))
	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	other, err := st.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other.Lists)
}

func TestStore_LastWriteWins(t *testing.T) {
	st := openInMemory(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "alice", sample()))
	require.NoError(t, st.Save(ctx, "alice", todo.EmptySnapshot()))

	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, todo.EmptySnapshot(), got)
}

func TestStore_Delete(t *testing.T) {
	st := openInMemory(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "alice", sample()))
	require.NoError(t, st.Delete(ctx, "alice"))
	require.NoError(t, st.Delete(ctx, "never-saved"))

	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, todo.EmptySnapshot(), got)
}

func TestStore_NullArraysNormalized(t *testing.T) {
	st := openInMemory(t)
	require.NoError(t, st.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key("legacy"), []byte(`{"lists":[{"id":1,"title":"Home","tasks":null}]}`))
	}))

	got, err := st.Load(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, todo.Snapshot{Lists: []todo.ListSnapshot{
		{ID: 1, Title: "Home", Tasks: []todo.TaskSnapshot{}},
	}}, got)
}

func TestStore_InvalidSessionID(t *testing.T) {
	st := openInMemory(t)
	ctx := context.Background()

	_, err := st.Load(ctx, "../etc")
	assert.ErrorIs(t, err, session.ErrInvalidID)
	assert.ErrorIs(t, st.Save(ctx, "", sample()), session.ErrInvalidID)
}

func TestStore_CancelledContext(t *testing.T) {
	st := openInMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Load(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	st, err := Open(Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, session.DefaultID, sample()))
	require.NoError(t, st.Close())

	st, err = Open(Config{Path: dir})
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Load(ctx, session.DefaultID)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{})
	assert.Error(t, err)
}
