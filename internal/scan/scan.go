// Package scan discovers pages roots and enumerates the component files
// beneath them. It is the inbound collaborator of the route tree core:
// all filesystem IO happens here, before a build pass begins.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Root is one pages directory and its ambient scope.
type Root struct {
	// Dir is the absolute path of the pages directory.
	Dir string

	// Scope is the ambient scope label for files under Dir.
	Scope string
}

// GlobalScope is the scope of the conventional top-level pages root.
const GlobalScope = "global"

// entrypointsDir is the conventional directory holding per-surface
// entrypoints, each of which may carry its own pages directory.
const entrypointsDir = "entrypoints"

// pagesDir is the conventional name of a pages root.
const pagesDir = "pages"

// DiscoverRoots finds pages roots under srcDir by convention:
//
//	<srcDir>/pages                    → scope "global"
//	<srcDir>/entrypoints/<name>/pages → scope "<name>"
//
// Only real IO failures return an error; an absent convention directory
// simply contributes no roots.
func DiscoverRoots(srcDir string) ([]Root, error) {
	var roots []Root

	global := filepath.Join(srcDir, pagesDir)
	if isDir(global) {
		roots = append(roots, Root{Dir: global, Scope: GlobalScope})
	}

	entries, err := os.ReadDir(filepath.Join(srcDir, entrypointsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return roots, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(srcDir, entrypointsDir, entry.Name(), pagesDir)
		if isDir(dir) {
			roots = append(roots, Root{Dir: dir, Scope: entry.Name()})
		}
	}

	return roots, nil
}

// ListFiles walks one pages root and returns the absolute paths of all
// files carrying a recognized component suffix, in lexical walk order.
func ListFiles(root string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories never contribute pages.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(d.Name(), extensions) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
