package pages

import (
	"path"
	"regexp"
	"strings"
)

var (
	// scopePrefixRe strips the leading @name/ segment captured during
	// classification.
	scopePrefixRe = regexp.MustCompile(`^@[^/]+/`)

	// groupRe strips organizational (group)/ segments anywhere in a path.
	groupRe = regexp.MustCompile(`\([^/)]+\)/`)

	// paramRe rewrites [name] to :name. The inner class excludes dots so
	// a catch-all [...name] is never partially consumed; the rewrite
	// order below preserves that guarantee regardless.
	paramRe = regexp.MustCompile(`\[([^\].]+)\]`)

	// catchAllRe rewrites [...name] to :name(.*)*.
	catchAllRe = regexp.MustCompile(`\[\.\.\.([^\]]+)\]`)
)

// DeriveRoute turns one classified node into a RouteDefinition without
// children or layout; the tree builder fills those in afterwards.
//
// parentPath is the already-derived path of the enclosing route, empty at
// the top level. scope is the resolved scope for the route (the parent
// route's scope when nested, the node's own otherwise).
func DeriveRoute(node FileNode, extensions []string, parentPath, scope string) *RouteDefinition {
	clean := stripExtension(node.RelativePath, extensions)
	clean = scopePrefixRe.ReplaceAllString(clean, "")
	clean = groupRe.ReplaceAllString(clean, "")

	var routePath, name string
	if node.IsParent {
		dir := cleanDir(clean)
		if parentPath != "" {
			// Nested under another parent route; an own prefix here
			// would duplicate the enclosing path.
			routePath = ""
		} else {
			routePath = "/" + dir
		}
		name = strings.ReplaceAll(dir, "/", "-")
		if name == "" {
			name = "parent"
		}
	} else {
		if path.Base(clean) == "index" {
			routePath = "/" + cleanDir(clean)
		} else {
			routePath = "/" + clean
		}
		name = routeName(clean)
	}

	// Dynamic segments before catch-alls: the catch-all pattern is a
	// superset of the bracket syntax.
	routePath = paramRe.ReplaceAllString(routePath, ":$1")
	routePath = catchAllRe.ReplaceAllString(routePath, `:$1(.*)*`)

	// Child paths inside a nested router are parent-relative.
	if parentPath != "" && strings.HasPrefix(routePath, parentPath) {
		routePath = strings.TrimPrefix(routePath, parentPath)
		if strings.HasPrefix(routePath, "/") && routePath != "/" {
			routePath = routePath[1:]
		}
	}

	return &RouteDefinition{
		Path:  routePath,
		Name:  name,
		File:  node.AbsolutePath,
		Scope: scope,
	}
}

// routeName derives a route name from a cleaned relative path. The name
// is always computed from the full cleaned path, never from the
// parent-relative path, so nested and top-level naming agree.
func routeName(clean string) string {
	name := catchAllRe.ReplaceAllString(clean, `${1}-all`)
	name = paramRe.ReplaceAllString(name, `$1`)
	name = strings.ReplaceAll(name, "/", "-")
	if name != "index" {
		name = strings.TrimSuffix(name, "-index")
	}
	return name
}

// cleanDir returns the directory of a cleaned relative path, empty at
// the root.
func cleanDir(clean string) string {
	dir := path.Dir(clean)
	if dir == "." {
		return ""
	}
	return dir
}

// stripExtension removes the first matching recognized component suffix.
func stripExtension(p string, extensions []string) string {
	for _, ext := range extensions {
		if strings.HasSuffix(p, ext) {
			return strings.TrimSuffix(p, ext)
		}
	}
	return p
}
