package pages

import (
	"path"
	"regexp"
	"strings"
)

// flatNameRe collapses path separators (and the colon of a following
// dynamic segment) into dashes when renaming rewritten flat routes.
var flatNameRe = regexp.MustCompile(`/:?`)

// ConflictKind identifies which special-file slot was contested.
type ConflictKind string

const (
	ConflictParent ConflictKind = "parent"
	ConflictLayout ConflictKind = "layout"
)

// Conflict records a duplicate special file inside one directory. The
// first match wins; the rest are discarded but reported so the caller can
// surface the misconfiguration at the end of a build pass.
type Conflict struct {
	Dir       string
	Kind      ConflictKind
	Kept      string
	Discarded string
}

// Builder assembles RouteDefinition trees from a directory index. A
// Builder is single-use: construct, call Build, read Conflicts.
type Builder struct {
	index      *DirectoryIndex
	extensions []string
	conflicts  []Conflict
}

// NewBuilder creates a builder over a directory index. extensions is the
// driver-supplied list of recognized component suffixes, used to compute
// page stems for child-directory attachment.
func NewBuilder(index *DirectoryIndex, extensions []string) *Builder {
	return &Builder{index: index, extensions: extensions}
}

// Build constructs the route forest starting at the root directory.
// It never fails: missing or empty directories degrade to empty route
// lists.
func (b *Builder) Build() []*RouteDefinition {
	return b.buildDir(".", "", "")
}

// Conflicts returns the duplicate special files encountered during Build.
func (b *Builder) Conflicts() []Conflict {
	return b.conflicts
}

// buildDir turns one directory's nodes into routes. parentPath is the
// path context of the enclosing route ("" at the top level or for
// orphan splices), parentScope the inherited scope ("" when unset).
func (b *Builder) buildDir(dir, parentPath, parentScope string) []*RouteDefinition {
	nodes := b.index.Get(dir)

	var parent, layout *FileNode
	var pageNodes []FileNode
	for i := range nodes {
		node := &nodes[i]
		switch {
		// A file matching both special names counts as parent: a parent
		// route already wraps its siblings the way a layout would.
		case node.IsParent:
			if parent == nil {
				parent = node
			} else {
				b.conflicts = append(b.conflicts, Conflict{
					Dir: dir, Kind: ConflictParent,
					Kept: parent.AbsolutePath, Discarded: node.AbsolutePath,
				})
			}
		case node.IsLayout:
			if layout == nil {
				layout = node
			} else {
				b.conflicts = append(b.conflicts, Conflict{
					Dir: dir, Kind: ConflictLayout,
					Kept: layout.AbsolutePath, Discarded: node.AbsolutePath,
				})
			}
		default:
			pageNodes = append(pageNodes, *node)
		}
	}

	var routes []*RouteDefinition
	consumed := make(map[string]bool)

	for _, node := range pageNodes {
		route := DeriveRoute(node, b.extensions, parentPath, b.resolveScope(parentScope, node))

		if layout != nil {
			route.Layout = layout.AbsolutePath
		}

		// A subdirectory named after the page stem nests beneath it.
		stem := stripExtension(path.Base(node.RelativePath), b.extensions)
		childDir := stem
		if dir != "." {
			childDir = dir + "/" + stem
		}
		if b.dirExists(childDir) {
			consumed[childDir] = true
			route.Children = b.buildDir(childDir, route.Path, route.Scope)
		}

		// Flat-route convention: underscores in the derived path stand
		// for nesting that was never expressed as directories.
		if strings.Contains(route.Path, "_") {
			route.Path = strings.ReplaceAll(route.Path, "_", "/")
			route.Name = flatNameRe.ReplaceAllString(strings.TrimPrefix(route.Path, "/"), "-")
		}

		routes = append(routes, route)
	}

	// Subdirectories with no corresponding page file surface their routes
	// as flat siblings at this level, keeping the inherited scope but not
	// the path context. Children are implied by any registered key below
	// this directory, so a directory holding only deeper files is still
	// descended into.
	for _, childDir := range b.impliedChildren(dir) {
		if consumed[childDir] {
			continue
		}
		routes = append(routes, b.buildDir(childDir, "", parentScope)...)
	}

	if parent != nil {
		route := DeriveRoute(*parent, b.extensions, parentPath, b.resolveScope(parentScope, *parent))
		route.Children = routes
		return []*RouteDefinition{route}
	}

	return routes
}

// resolveScope prefers the inherited scope of the enclosing route over
// the node's own.
func (b *Builder) resolveScope(parentScope string, node FileNode) string {
	if parentScope != "" {
		return parentScope
	}
	return node.Scope
}

// impliedChildren returns the direct child directories of dir in
// first-seen key order. A child is implied by any registered key at or
// below it, so intermediate directories holding no files of their own
// still appear.
func (b *Builder) impliedChildren(dir string) []string {
	prefix := ""
	if dir != "." {
		prefix = dir + "/"
	}

	var children []string
	seen := make(map[string]bool)
	for _, key := range b.index.Dirs() {
		if key == dir || key == "." {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		seg := strings.TrimPrefix(key, prefix)
		if i := strings.Index(seg, "/"); i >= 0 {
			seg = seg[:i]
		}
		child := prefix + seg
		if !seen[child] {
			seen[child] = true
			children = append(children, child)
		}
	}
	return children
}

// dirExists reports whether dir holds any files, directly or below.
func (b *Builder) dirExists(dir string) bool {
	if b.index.Has(dir) {
		return true
	}
	prefix := dir + "/"
	for _, key := range b.index.Dirs() {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// Options bundles the inputs of one build pass over a single pages root.
type Options struct {
	// BaseDir is the absolute path of the pages root.
	BaseDir string

	// Scope is the ambient scope label for this root.
	Scope string

	// LayoutFile and ParentFile are the configured special file names,
	// empty to disable either convention.
	LayoutFile string
	ParentFile string

	// Extensions lists recognized component suffixes, e.g. [".vue"].
	Extensions []string
}

// BuildRoutes classifies the given absolute file paths, groups them by
// directory and builds the route forest for one pages root. File order
// is preserved throughout; the result is never sorted.
func BuildRoutes(files []string, opts Options) []*RouteDefinition {
	routes, _ := BuildRoutesWithConflicts(files, opts)
	return routes
}

// BuildRoutesWithConflicts is BuildRoutes plus the duplicate-special-file
// report collected during the pass.
func BuildRoutesWithConflicts(files []string, opts Options) ([]*RouteDefinition, []Conflict) {
	nodes := make([]FileNode, 0, len(files))
	for _, file := range files {
		nodes = append(nodes, Classify(file, ClassifyOptions{
			BaseDir:    opts.BaseDir,
			Scope:      opts.Scope,
			LayoutFile: opts.LayoutFile,
			ParentFile: opts.ParentFile,
		}))
	}

	builder := NewBuilder(GroupByDirectory(nodes), opts.Extensions)
	return builder.Build(), builder.Conflicts()
}
