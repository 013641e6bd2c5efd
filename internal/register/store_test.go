package register

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcheck-dev/bcheck/internal/model"
)

func TestStore_FormatByExtension(t *testing.T) {
	assert.Equal(t, FormatTSV, NewStore(StoreConfig{Path: "a.tsv"}).Format())
	assert.Equal(t, FormatJSON, NewStore(StoreConfig{Path: "a.bcheck"}).Format())
	assert.Equal(t, FormatTSV, NewStore(StoreConfig{Path: "a.bcheck", Format: FormatTSV}).Format())
}

func TestStore_SaveLoad(t *testing.T) {
	for _, name := range []string{"register.bcheck", "register.tsv"} {
		path := filepath.Join(t.TempDir(), name)
		store := NewStore(StoreConfig{Path: path})
		assert.Equal(t, path, store.Path())

		require.NoError(t, store.Save(sampleRecords(t)))
		got, err := store.Load()
		require.NoError(t, err, name)
		requireSameRecords(t, sampleRecords(t), got)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(StoreConfig{Path: filepath.Join(t.TempDir(), "missing.bcheck")})
	_, err := store.Load()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStore_LenientTSVLogsFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.tsv")
	require.NoError(t, os.WriteFile(path, []byte("x\tnot-a-date\t\tN\t\tVendor\t\t\t1.00\r\n"), 0o644))

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	store := NewStore(StoreConfig{Path: path, Logger: &logger})

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Vendor", got[0].Transaction.Vendor)
	assert.Contains(t, logs.String(), `"line":1`)
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestStore_StrictTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.tsv")
	require.NoError(t, os.WriteFile(path, []byte("x\tnot-a-date\t\tN\t\tVendor\t\t\t1.00\r\n"), 0o644))

	_, err := NewStore(StoreConfig{Path: path, Strict: true}).Load()
	var derr *DecodeError
	assert.ErrorAs(t, err, &derr)
}

func TestStore_AppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.bcheck")
	store := NewStore(StoreConfig{Path: path})

	for _, r := range sampleRecords(t) {
		require.NoError(t, store.Append(r))
	}

	got, err := store.Load()
	require.NoError(t, err)
	requireSameRecords(t, sampleRecords(t), got)

	err = store.Append(sampleRecords(t)[0])
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestStore_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.tsv")
	store := NewStore(StoreConfig{Path: path})
	require.NoError(t, store.Save(sampleRecords(t)))

	err := store.Update(func(g model.Register) (model.Register, error) {
		book := NewBook(g)
		if err := book.Reconcile(headsetID); err != nil {
			return nil, err
		}
		return book.All(), nil
	})
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.True(t, got[1].Transaction.IsReconciled)
	assert.False(t, got[0].Transaction.IsReconciled)
}

func TestStore_UpdateErrorLeavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.bcheck")
	store := NewStore(StoreConfig{Path: path})
	require.NoError(t, store.Save(sampleRecords(t)))

	err := store.Update(func(g model.Register) (model.Register, error) {
		return nil, NewBook(g).Reconcile("nope")
	})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
