package driver

import (
	"fmt"
	"strings"

	"github.com/davestewart/wxt-module-pages/pkg/pages"
)

// Driver renders route definition trees to framework-specific source text.
type Driver interface {
	// Name identifies the driver, e.g. "vue".
	Name() string

	// Extensions lists the file-name suffixes that count as routable
	// component files, e.g. [".vue"].
	Extensions() []string

	// LayoutFile is the exact base name of layout files, empty when the
	// framework has no layout convention.
	LayoutFile() string

	// ParentFile is the exact base name of parent/outlet files, empty
	// when the framework has no parent convention.
	ParentFile() string

	// RenderRoute renders one route and, recursively, its children.
	// depth is the nesting level used for indentation.
	RenderRoute(route *pages.RouteDefinition, depth int) string

	// RenderRouteList wraps rendered top-level routes into a complete
	// module.
	RenderRouteList(routes []string) string
}

// Get resolves a driver by name. The empty name resolves to the Vue
// driver.
func Get(name string) (Driver, error) {
	switch name {
	case "", "vue":
		return Vue{}, nil
	case "react":
		return React{}, nil
	}
	return nil, fmt.Errorf("unknown driver %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the available driver names.
func Names() []string {
	return []string{"vue", "react"}
}

// RenderScope renders a full scope's route trees through a driver.
func RenderScope(d Driver, routes []*pages.RouteDefinition) string {
	rendered := make([]string, 0, len(routes))
	for _, route := range routes {
		rendered = append(rendered, d.RenderRoute(route, 1))
	}
	return d.RenderRouteList(rendered)
}

// jsString quotes a string as a single-quoted JavaScript literal.
func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// indent returns the indentation for a nesting depth.
func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
