package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/stretchr/testify/require"
)

func TestOpen_RoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	localPath := filepath.Join(dir, "local", "listen.db")
	sharedPath := filepath.Join(dir, "group", "shared.db")

	s, closeFn, err := Open(ctx, localPath, sharedPath, nil)
	require.NoError(t, err)

	res := s.Put(ctx, common.EntriesKey, []byte(`["a","b"]`))
	require.NoError(t, res.Local)
	require.NoError(t, res.Shared)
	require.NoError(t, closeFn())

	ro, roClose := OpenReadOnly(ctx, localPath, sharedPath, nil)
	defer func() { require.NoError(t, roClose()) }()

	var got []string
	src, err := ro.Read(ctx, common.EntriesKey, func(b []byte) error { return json.Unmarshal(b, &got) })
	require.NoError(t, err)
	require.Equal(t, SourceShared, src)
	require.Equal(t, []string{"a", "b"}, got)

	_, err = ro.shared.ExecContext(ctx, `DELETE FROM defaults`)
	require.Error(t, err, "read-only handle must reject writes")
}

func TestOpenReadOnly_MissingStores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	ro, closeFn := OpenReadOnly(ctx, filepath.Join(dir, "none.db"), filepath.Join(dir, "nothing.db"), nil)
	defer closeFn()

	_, err := ro.Read(ctx, common.EntriesKey, func([]byte) error { return nil })
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.False(t, fileExists(filepath.Join(dir, "nothing.db")), "read-only open must not create files")
}

func TestOpen_SharedUnavailable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// A regular file where a directory is expected makes the shared path unusable.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, writeFile(blocker))

	s, closeFn, err := Open(ctx, filepath.Join(dir, "local.db"), filepath.Join(blocker, "shared.db"), nil)
	require.NoError(t, err)
	defer closeFn()

	res := s.Put(ctx, "k", []byte("1"))
	require.NoError(t, res.Local)
	require.Error(t, res.Shared)
}

func TestOpenReadOnly_PicksUpLateStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	localPath, sharedPath := filepath.Join(dir, "local.db"), filepath.Join(dir, "shared.db")

	ro, roClose := OpenReadOnly(ctx, localPath, sharedPath, nil)
	defer roClose()
	_, err := ro.Read(ctx, common.EntriesKey, func([]byte) error { return nil })
	require.ErrorIs(t, err, common.ErrorNotFound)

	s, closeFn, err := Open(ctx, localPath, sharedPath, nil)
	require.NoError(t, err)
	defer closeFn()
	require.NoError(t, s.Put(ctx, common.EntriesKey, []byte(`[]`)).Err())

	var raw []byte
	src, err := ro.Read(ctx, common.EntriesKey, func(b []byte) error { raw = b; return nil })
	require.NoError(t, err)
	require.Equal(t, SourceShared, src)
	require.Equal(t, []byte(`[]`), raw)
}
