package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davestewart/wxt-module-pages/internal/scan"
	"github.com/davestewart/wxt-module-pages/pkg/driver"
)

func touch(t *testing.T, paths ...string) {
	t.Helper()
	for _, path := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("<template/>"), 0644))
	}
}

func vue(t *testing.T) driver.Driver {
	t.Helper()
	d, err := driver.Get("vue")
	require.NoError(t, err)
	return d
}

func TestRunSingleRoot(t *testing.T) {
	root := t.TempDir()
	touch(t,
		filepath.Join(root, "index.vue"),
		filepath.Join(root, "about.vue"),
	)

	result, err := Run(context.Background(), Options{
		Roots:  []scan.Root{{Dir: root, Scope: scan.GlobalScope}},
		Driver: vue(t),
	})
	require.NoError(t, err)

	require.Equal(t, 2, result.Files)
	require.Len(t, result.Routes[scan.GlobalScope], 2)
	require.Empty(t, result.Conflicts)

	paths := []string{
		result.Routes[scan.GlobalScope][0].Path,
		result.Routes[scan.GlobalScope][1].Path,
	}
	require.ElementsMatch(t, []string{"/", "/about"}, paths)
}

func TestRunAlwaysEmitsGlobal(t *testing.T) {
	result, err := Run(context.Background(), Options{Driver: vue(t)})
	require.NoError(t, err)

	_, ok := result.Routes[scan.GlobalScope]
	require.True(t, ok, "global scope key must always be present")
	require.Empty(t, result.Routes[scan.GlobalScope])
}

func TestRunScopedRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "index.vue"))

	result, err := Run(context.Background(), Options{
		Roots:  []scan.Root{{Dir: root, Scope: "popup"}},
		Driver: vue(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Routes["popup"], 1)
	require.Empty(t, result.Routes[scan.GlobalScope])
}

func TestRunScopeDirectoryCarvesScope(t *testing.T) {
	root := t.TempDir()
	touch(t,
		filepath.Join(root, "index.vue"),
		filepath.Join(root, "@billing", "invoices.vue"),
	)

	result, err := Run(context.Background(), Options{
		Roots:  []scan.Root{{Dir: root, Scope: scan.GlobalScope}},
		Driver: vue(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Routes[scan.GlobalScope], 1)
	require.Len(t, result.Routes["billing"], 1)
	require.Equal(t, "/invoices", result.Routes["billing"][0].Path)
}

func TestRunLastWinsOnDuplicatePath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	touch(t,
		filepath.Join(first, "about.vue"),
		filepath.Join(second, "about.vue"),
	)

	result, err := Run(context.Background(), Options{
		Roots: []scan.Root{
			{Dir: first, Scope: scan.GlobalScope},
			{Dir: second, Scope: scan.GlobalScope},
		},
		Driver: vue(t),
	})
	require.NoError(t, err)

	routes := result.Routes[scan.GlobalScope]
	require.Len(t, routes, 1)
	require.Equal(t, filepath.Join(second, "about.vue"), routes[0].File)
}

func TestRunMissingRoot(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Roots:  []scan.Root{{Dir: filepath.Join(t.TempDir(), "nope"), Scope: scan.GlobalScope}},
		Driver: vue(t),
	})
	require.Error(t, err)
}

func TestRunFreshResultPerPass(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "index.vue"))

	opts := Options{
		Roots:  []scan.Root{{Dir: root, Scope: scan.GlobalScope}},
		Driver: vue(t),
	}

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), opts)
	require.NoError(t, err)

	// Mutating one pass's result must not leak into the other.
	first.Routes[scan.GlobalScope] = nil
	require.Len(t, second.Routes[scan.GlobalScope], 1)
}

func TestScopesOrder(t *testing.T) {
	root := t.TempDir()
	touch(t,
		filepath.Join(root, "index.vue"),
		filepath.Join(root, "@zeta", "one.vue"),
		filepath.Join(root, "@alpha", "two.vue"),
	)

	opts := Options{
		Roots:  []scan.Root{{Dir: root, Scope: scan.GlobalScope}},
		Driver: vue(t),
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	// Global leads, the rest is sorted, and the order holds across
	// passes despite map-backed storage.
	want := []string{scan.GlobalScope, "alpha", "zeta"}
	require.Equal(t, want, result.Scopes())

	again, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, want, again.Scopes())
}

func TestRenderScope(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "index.vue"))

	d := vue(t)
	result, err := Run(context.Background(), Options{
		Roots:  []scan.Root{{Dir: root, Scope: scan.GlobalScope}},
		Driver: d,
	})
	require.NoError(t, err)

	out := result.Render(d, scan.GlobalScope)
	require.Contains(t, out, "path: '/'")
	require.Contains(t, out, "name: 'index'")
}
