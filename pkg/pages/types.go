package pages

import "path"

// FileNode is one discovered page-component file after classification.
// Nodes are created once per input file and read-only afterwards.
type FileNode struct {
	// AbsolutePath is the caller-owned identifier of the file.
	AbsolutePath string

	// RelativePath is the path from the scan root, forward slashes only.
	RelativePath string

	// IsLayout marks a file whose base name equals the configured layout
	// file name. Layout files wrap sibling pages without becoming routes.
	IsLayout bool

	// IsParent marks a file whose base name equals the configured parent
	// file name. Parent files become the wrapping route for the directory.
	IsParent bool

	// Scope is the route-table partition this file belongs to. Defaults
	// to the directory's ambient scope unless the relative path starts
	// with an @name/ segment.
	Scope string
}

// RouteDefinition is one emitted route.
type RouteDefinition struct {
	// Path is the URL path or, for nested children, the parent-relative
	// segment. The empty string represents a default (index) child.
	Path string `json:"path"`

	// Name is a stable identifier derived from the path. Uniqueness is
	// not enforced; see the builder documentation.
	Name string `json:"name"`

	// File is the absolute path of the backing component.
	File string `json:"file"`

	// Scope is the resolved scope tag. Children inherit the scope of
	// their parent route.
	Scope string `json:"scope,omitempty"`

	// Children holds nested routes, nil when the route has none.
	Children []*RouteDefinition `json:"children,omitempty"`

	// Layout is the absolute path of the layout file applied to this
	// route, empty when the directory has no layout.
	Layout string `json:"layout,omitempty"`
}

// DirectoryIndex maps a normalized directory path ("." for the root) to
// the files directly inside it. Insertion order is preserved both within
// a directory's node list and across directory keys, so tree construction
// is deterministic for a given input order.
type DirectoryIndex struct {
	dirs  []string
	nodes map[string][]FileNode
}

// NewDirectoryIndex creates an empty index.
func NewDirectoryIndex() *DirectoryIndex {
	return &DirectoryIndex{nodes: make(map[string][]FileNode)}
}

// Add registers a node under its containing directory.
func (ix *DirectoryIndex) Add(node FileNode) {
	dir := path.Dir(node.RelativePath)
	if _, ok := ix.nodes[dir]; !ok {
		ix.dirs = append(ix.dirs, dir)
	}
	ix.nodes[dir] = append(ix.nodes[dir], node)
}

// Get returns the nodes directly inside dir, nil when none are registered.
func (ix *DirectoryIndex) Get(dir string) []FileNode {
	return ix.nodes[dir]
}

// Has reports whether dir has any registered nodes.
func (ix *DirectoryIndex) Has(dir string) bool {
	_, ok := ix.nodes[dir]
	return ok
}

// Dirs returns the directory keys in first-seen order.
func (ix *DirectoryIndex) Dirs() []string {
	return ix.dirs
}

// Len returns the number of directory keys.
func (ix *DirectoryIndex) Len() int {
	return len(ix.nodes)
}
