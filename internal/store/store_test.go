package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) Store
	// putRaw writes an encoded record directly, bypassing Save
	putRaw func(t *testing.T, st Store, data []byte)
}

var backends = []backend{
	{
		name: config.BackendSQLite,
		open: func(t *testing.T) Store {
			st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "runway.db"))
			require.NoError(t, err)
			return st
		},
		putRaw: func(t *testing.T, st Store, data []byte) {
			_, err := st.(*SQLiteStore).db.Exec(
				`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
				SnapshotKey, data, time.Now().UTC().Format(time.RFC3339))
			require.NoError(t, err)
		},
	},
	{
		name: config.BackendFile,
		open: func(t *testing.T) Store {
			st, err := OpenFile(filepath.Join(t.TempDir(), "data"))
			require.NoError(t, err)
			return st
		},
		putRaw: func(t *testing.T, st Store, data []byte) {
			require.NoError(t, os.WriteFile(st.(*FileStore).path(), data, 0o600))
		},
	},
}

func TestStoreRoundTrip(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			st := b.open(t)
			defer st.Close()

			s := domain.DefaultSnapshot()
			s.Age = 51
			s.TaxRate = decimal.NewFromFloat(18.5)
			s.Assets.OtherLiquid = decimal.RequireFromString("1234.56")
			s.LastUpdated = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

			require.NoError(t, st.Save(ctx, s))
			loaded, err := st.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.True(t, loaded.Equal(s))

			// saving again replaces the record
			s.Age = 52
			require.NoError(t, st.Save(ctx, s))
			loaded, err = st.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 52, loaded.Age)
		})
	}
}

func TestStoreEmptyAndClear(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			st := b.open(t)
			defer st.Close()

			loaded, err := st.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, loaded, "nothing stored yet")

			require.NoError(t, st.Clear(ctx), "clearing an empty store")

			require.NoError(t, st.Save(ctx, domain.DefaultSnapshot()))
			require.NoError(t, st.Clear(ctx))

			loaded, err = st.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestStoreLoadMergesOverDefaults(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			st := b.open(t)
			defer st.Close()

			b.putRaw(t, st, []byte(`{"age": 50, "assets": {"ira": "1000"}}`))

			loaded, err := st.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, loaded)

			def := domain.DefaultSnapshot()
			assert.Equal(t, 50, loaded.Age)
			assert.True(t, loaded.Assets.IRA.Equal(decimal.NewFromInt(1000)))
			assert.True(t, loaded.Assets.FourOhOneK.Equal(def.Assets.FourOhOneK))
			assert.True(t, loaded.ROIScenarios.Mid.Equal(def.ROIScenarios.Mid))
			assert.Equal(t, def.SSAClaimingAge, loaded.SSAClaimingAge)
		})
	}
}

func TestStoreLoadCorruptRecord(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			st := b.open(t)
			defer st.Close()

			b.putRaw(t, st, []byte(`{"age": `))
			_, err := st.Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decode snapshot")
		})
	}
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			st := b.open(t)
			defer st.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			assert.ErrorIs(t, st.Save(ctx, domain.DefaultSnapshot()), context.Canceled)
			_, err := st.Load(ctx)
			assert.ErrorIs(t, err, context.Canceled)
			assert.ErrorIs(t, st.Clear(ctx), context.Canceled)
		})
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := Open(ctx, config.StorageSettings{Backend: "SQLite", Path: filepath.Join(dir, "a.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, st)
	require.NoError(t, st.Close())

	st, err = Open(ctx, config.StorageSettings{Backend: "file", Path: filepath.Join(dir, "files")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)
	require.NoError(t, st.Close())

	_, err = Open(ctx, config.StorageSettings{Backend: "redis", Path: dir})
	assert.True(t, errors.Is(err, ErrUnknownBackend))

	_, err = Open(ctx, config.StorageSettings{Backend: "sqlite", Path: " "})
	assert.Error(t, err)
}

func TestSQLiteCloseIsNilSafe(t *testing.T) {
	var st *SQLiteStore
	assert.NoError(t, st.Close())
}
