package pages

import (
	"path"
	"path/filepath"
	"regexp"
)

// scopeRe captures a leading @name/ segment in a relative path.
var scopeRe = regexp.MustCompile(`^@([^/]+)/`)

// ClassifyOptions configures file classification.
type ClassifyOptions struct {
	// BaseDir is the scan root relative paths are computed against.
	BaseDir string

	// Scope is the ambient scope assigned to files without an @name/
	// prefix.
	Scope string

	// LayoutFile is the exact base name of layout files. Empty disables
	// layout detection.
	LayoutFile string

	// ParentFile is the exact base name of parent/outlet files. Empty
	// disables parent detection.
	ParentFile string
}

// Classify derives a FileNode from one absolute file path. It is a pure
// function of its inputs; malformed paths pass through best-effort.
//
// Layout and parent roles are evaluated independently. A file name
// configured as both matches both flags; the builder resolves the
// conflict with parent taking precedence.
func Classify(absPath string, opts ClassifyOptions) FileNode {
	rel, err := filepath.Rel(opts.BaseDir, absPath)
	if err != nil {
		rel = absPath
	}
	rel = filepath.ToSlash(rel)

	node := FileNode{
		AbsolutePath: absPath,
		RelativePath: rel,
		Scope:        opts.Scope,
	}

	base := path.Base(rel)
	node.IsParent = opts.ParentFile != "" && base == opts.ParentFile
	node.IsLayout = opts.LayoutFile != "" && base == opts.LayoutFile

	if m := scopeRe.FindStringSubmatch(rel); m != nil {
		node.Scope = m[1]
	}

	return node
}

// GroupByDirectory partitions classified nodes by containing directory.
// Node order within each directory follows the input order.
func GroupByDirectory(nodes []FileNode) *DirectoryIndex {
	ix := NewDirectoryIndex()
	for _, node := range nodes {
		ix.Add(node)
	}
	return ix
}
