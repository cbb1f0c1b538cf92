package driver

import (
	"strings"

	"github.com/davestewart/wxt-module-pages/pkg/pages"
)

// React renders react-router object routes with lazy module imports.
type React struct{}

// Name implements Driver.
func (React) Name() string { return "react" }

// Extensions implements Driver.
func (React) Extensions() []string { return []string{".tsx", ".jsx"} }

// LayoutFile implements Driver.
func (React) LayoutFile() string { return "layout.tsx" }

// ParentFile implements Driver.
func (React) ParentFile() string { return "parent.tsx" }

// RenderRoute implements Driver. Output is one route object:
//
//	{
//	  path: '/users',
//	  id: 'users',
//	  lazy: () => import('/pages/users.tsx'),
//	  children: [ ... ],
//	},
func (r React) RenderRoute(route *pages.RouteDefinition, depth int) string {
	pad := indent(depth)
	var b strings.Builder

	b.WriteString(pad + "{\n")
	b.WriteString(pad + "  path: " + jsString(route.Path) + ",\n")
	b.WriteString(pad + "  id: " + jsString(route.Name) + ",\n")
	b.WriteString(pad + "  lazy: () => import(" + jsString(route.File) + "),\n")
	if route.Layout != "" {
		b.WriteString(pad + "  handle: { layout: () => import(" + jsString(route.Layout) + ") },\n")
	}
	if route.Children != nil {
		b.WriteString(pad + "  children: [\n")
		for _, child := range route.Children {
			b.WriteString(r.RenderRoute(child, depth+2))
			b.WriteString("\n")
		}
		b.WriteString(pad + "  ],\n")
	}
	b.WriteString(pad + "},")

	return b.String()
}

// RenderRouteList implements Driver.
func (React) RenderRouteList(routes []string) string {
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
