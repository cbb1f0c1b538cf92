package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, paths ...string) {
	t.Helper()
	for _, path := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("<template/>"), 0644))
	}
}

func TestDiscoverRoots(t *testing.T) {
	src := t.TempDir()
	touch(t,
		filepath.Join(src, "pages", "index.vue"),
		filepath.Join(src, "entrypoints", "popup", "pages", "index.vue"),
		filepath.Join(src, "entrypoints", "options", "pages", "index.vue"),
		filepath.Join(src, "entrypoints", "background", "main.ts"),
	)

	roots, err := DiscoverRoots(src)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	require.Equal(t, GlobalScope, roots[0].Scope)
	require.Equal(t, filepath.Join(src, "pages"), roots[0].Dir)

	scopes := []string{roots[1].Scope, roots[2].Scope}
	require.ElementsMatch(t, []string{"popup", "options"}, scopes)
}

func TestDiscoverRootsEmpty(t *testing.T) {
	roots, err := DiscoverRoots(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, roots)
}

func TestListFiles(t *testing.T) {
	src := t.TempDir()
	touch(t,
		filepath.Join(src, "index.vue"),
		filepath.Join(src, "users", "[id].vue"),
		filepath.Join(src, "users", "index.vue"),
		filepath.Join(src, "notes.md"),
		filepath.Join(src, ".cache", "stale.vue"),
	)

	files, err := ListFiles(src, []string{".vue"})
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, file := range files {
		require.True(t, filepath.IsAbs(file), "paths must be absolute: %s", file)
		require.NotContains(t, file, ".cache")
		require.NotContains(t, file, ".md")
	}
}

func TestListFilesMissingRoot(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), []string{".vue"})
	require.Error(t, err)
}
