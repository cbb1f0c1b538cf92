package driver

import (
	"strings"

	"github.com/davestewart/wxt-module-pages/pkg/pages"
)

// Vue renders vue-router route record arrays with lazy component imports.
type Vue struct{}

// Name implements Driver.
func (Vue) Name() string { return "vue" }

// Extensions implements Driver.
func (Vue) Extensions() []string { return []string{".vue"} }

// LayoutFile implements Driver.
func (Vue) LayoutFile() string { return "layout.vue" }

// ParentFile implements Driver.
func (Vue) ParentFile() string { return "parent.vue" }

// RenderRoute implements Driver. Output is one route record:
//
//	{
//	  path: '/users',
//	  name: 'users',
//	  component: () => import('/pages/users.vue'),
//	  children: [ ... ],
//	},
func (v Vue) RenderRoute(route *pages.RouteDefinition, depth int) string {
	pad := indent(depth)
	var b strings.Builder

	b.WriteString(pad + "{\n")
	b.WriteString(pad + "  path: " + jsString(route.Path) + ",\n")
	b.WriteString(pad + "  name: " + jsString(route.Name) + ",\n")
	b.WriteString(pad + "  component: () => import(" + jsString(route.File) + "),\n")
	if route.Layout != "" {
		b.WriteString(pad + "  meta: { layout: () => import(" + jsString(route.Layout) + ") },\n")
	}
	if route.Children != nil {
		b.WriteString(pad + "  children: [\n")
		for _, child := range route.Children {
			b.WriteString(v.RenderRoute(child, depth+2))
			b.WriteString("\n")
		}
		b.WriteString(pad + "  ],\n")
	}
	b.WriteString(pad + "},")

	return b.String()
}

// RenderRouteList implements Driver.
func (Vue) RenderRouteList(routes []string) string {
	var b strings.Builder
	b.WriteString("// Generated by wxt-module-pages. DO NOT EDIT.\n\n")
	b.WriteString("export default [\n")
	for _, route := range routes {
		b.WriteString(route)
		b.WriteString("\n")
	}
	b.WriteString("];\n")
	return b.String()
}
