package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepo_GetSet(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := NewFileRepo(fs, "/data")
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := r.Get(ctx, "tasksData")
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "tasksData", `[{"id":1}]`))

		got, err := r.Get(ctx, "tasksData")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "tasksData", `[]`))

		got, err := r.Get(ctx, "tasksData")
		require.NoError(t, err)
		assert.Equal(t, `[]`, got)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := afero.ReadDir(fs, "/data")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "tasksData.json", entries[0].Name())
	})
}

func TestFileRepo_InvalidKey(t *testing.T) {
	r := NewFileRepo(afero.NewMemMapFs(), "/data")
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, r.Set(ctx, key, "x"))
			_, err := r.Get(ctx, key)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrorNotFound)
		})
	}
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	r, err := OpenFile(dir)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Set(context.Background(), "tasksData", "[]"))
	assert.FileExists(t, filepath.Join(dir, "tasksData.json"))
}
