package driver

import (
	"strings"
	"testing"

	"github.com/davestewart/wxt-module-pages/pkg/pages"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"vue", "vue", true},
		{"react", "react", true},
		{"", "vue", true},
		{"svelte", "", false},
	}

	for _, tt := range tests {
		d, err := Get(tt.name)
		if tt.ok {
			if err != nil {
				t.Errorf("Get(%q) error: %v", tt.name, err)
				continue
			}
			if d.Name() != tt.want {
				t.Errorf("Get(%q).Name() = %q, want %q", tt.name, d.Name(), tt.want)
			}
		} else if err == nil {
			t.Errorf("Get(%q) expected error", tt.name)
		}
	}
}

func TestVueRenderRoute(t *testing.T) {
	route := &pages.RouteDefinition{
		Path:   "/users",
		Name:   "users",
		File:   "/pages/users.vue",
		Layout: "/pages/layout.vue",
		Children: []*pages.RouteDefinition{
			{Path: ":id", Name: "users-id", File: "/pages/users/[id].vue"},
		},
	}

	code := Vue{}.RenderRoute(route, 0)

	for _, want := range []string{
		"path: '/users',",
		"name: 'users',",
		"component: () => import('/pages/users.vue'),",
		"meta: { layout: () => import('/pages/layout.vue') },",
		"children: [",
		"path: ':id',",
		"name: 'users-id',",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("missing %q in:\n%s", want, code)
		}
	}
}

func TestVueRenderRouteOmitsEmptyFields(t *testing.T) {
	route := &pages.RouteDefinition{Path: "/about", Name: "about", File: "/pages/about.vue"}

	code := Vue{}.RenderRoute(route, 0)

	if strings.Contains(code, "meta:") {
		t.Error("meta rendered without a layout")
	}
	if strings.Contains(code, "children:") {
		t.Error("children rendered for a leaf route")
	}
}

func TestVueRenderRouteList(t *testing.T) {
	routes := []*pages.RouteDefinition{
		{Path: "/", Name: "index", File: "/pages/index.vue"},
		{Path: "/about", Name: "about", File: "/pages/about.vue"},
	}

	code := RenderScope(Vue{}, routes)

	if !strings.Contains(code, "DO NOT EDIT") {
		t.Error("missing DO NOT EDIT header")
	}
	if !strings.Contains(code, "export default [") {
		t.Error("missing module export")
	}
	if strings.Index(code, "'/'") > strings.Index(code, "'/about'") {
		t.Error("route order not preserved")
	}
}

func TestReactRenderRoute(t *testing.T) {
	route := &pages.RouteDefinition{
		Path:   "/docs/:path(.*)*",
		Name:   "docs-path-all",
		File:   "/pages/docs/[...path].tsx",
		Layout: "/pages/layout.tsx",
	}

	code := React{}.RenderRoute(route, 1)

	for _, want := range []string{
		"path: '/docs/:path(.*)*',",
		"id: 'docs-path-all',",
		"lazy: () => import('/pages/docs/[...path].tsx'),",
		"handle: { layout: () => import('/pages/layout.tsx') },",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("missing %q in:\n%s", want, code)
		}
	}
}

func TestRenderScopeEmpty(t *testing.T) {
	code := RenderScope(React{}, nil)
	if !strings.Contains(code, "export default [\n];") {
		t.Errorf("empty scope must render an empty module, got:\n%s", code)
	}
}

func TestJSString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/users", "'/users'"},
		{`it's`, `'it\'s'`},
		{`C:\pages`, `'C:\\pages'`},
	}

	for _, tt := range tests {
		if got := jsString(tt.in); got != tt.want {
			t.Errorf("jsString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
