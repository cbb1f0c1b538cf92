// Package build runs one complete generation pass: discovery output in,
// per-scope route trees out. Each pass produces a fresh scope map so
// callers can swap results atomically without torn reads.
package build

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/davestewart/wxt-module-pages/internal/errors"
	"github.com/davestewart/wxt-module-pages/internal/scan"
	"github.com/davestewart/wxt-module-pages/pkg/driver"
	"github.com/davestewart/wxt-module-pages/pkg/pages"
)

// tracerName identifies build-pass spans.
const tracerName = "wxt-module-pages/build"

// Options configures one build pass.
type Options struct {
	// Roots are the pages roots to process, in order.
	Roots []scan.Root

	// Driver supplies extensions and special file names, and later
	// renders the result.
	Driver driver.Driver

	// LayoutFile and ParentFile override the driver's special file
	// names when non-empty.
	LayoutFile string
	ParentFile string
}

// Result is the output of one build pass.
type Result struct {
	// Routes maps scope name to its ordered route trees. The "global"
	// scope key is always present, even when empty.
	Routes map[string][]*pages.RouteDefinition

	// Conflicts lists duplicate special files found during the pass.
	Conflicts []pages.Conflict

	// Files is the number of component files processed.
	Files int

	// Duration is the wall time of the pass.
	Duration time.Duration
}

// Scopes returns the scope names present in the result: "global" first,
// the rest sorted.
func (r *Result) Scopes() []string {
	scopes := []string{scan.GlobalScope}
	for scope := range r.Routes {
		if scope != scan.GlobalScope {
			scopes = append(scopes, scope)
		}
	}
	sort.Strings(scopes[1:])
	return scopes
}

// Render renders one scope's routes through a driver.
func (r *Result) Render(d driver.Driver, scope string) string {
	return driver.RenderScope(d, r.Routes[scope])
}

// Run executes one build pass. Filesystem errors surface before any tree
// is built; tree construction itself never fails.
func Run(ctx context.Context, opts Options) (*Result, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "pages.build")
	defer span.End()

	start := time.Now()

	layoutFile := opts.LayoutFile
	if layoutFile == "" {
		layoutFile = opts.Driver.LayoutFile()
	}
	parentFile := opts.ParentFile
	if parentFile == "" {
		parentFile = opts.Driver.ParentFile()
	}

	result := &Result{
		Routes: map[string][]*pages.RouteDefinition{
			scan.GlobalScope: nil,
		},
	}

	// Enumerate every root up front so IO failures abort the pass
	// before any tree exists.
	rootFiles := make([][]string, len(opts.Roots))
	for i, root := range opts.Roots {
		files, err := scan.ListFiles(root.Dir, opts.Driver.Extensions())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, errors.New("E122").
				WithDetail("Failed to walk " + root.Dir).
				Wrap(err)
		}
		rootFiles[i] = files
		result.Files += len(files)
	}

	for i, root := range opts.Roots {
		routes, conflicts := pages.BuildRoutesWithConflicts(rootFiles[i], pages.Options{
			BaseDir:    root.Dir,
			Scope:      root.Scope,
			LayoutFile: layoutFile,
			ParentFile: parentFile,
			Extensions: opts.Driver.Extensions(),
		})
		result.Conflicts = append(result.Conflicts, conflicts...)

		// Top-level routes of one scope merge across roots with
		// last-wins on duplicate paths.
		for scope, scoped := range splitByScope(routes, root.Scope) {
			result.Routes[scope] = mergeRoutes(result.Routes[scope], scoped)
		}
	}

	result.Duration = time.Since(start)
	recordPass(result)

	span.SetAttributes(
		attribute.Int("pages.roots", len(opts.Roots)),
		attribute.Int("pages.files", result.Files),
		attribute.Int("pages.scopes", len(result.Routes)),
		attribute.Int("pages.conflicts", len(result.Conflicts)),
	)
	span.SetStatus(codes.Ok, "")

	return result, nil
}

// splitByScope partitions top-level routes by their resolved scope. A
// root usually yields a single scope, but @name/ directories may carve
// extra scopes out of it.
func splitByScope(routes []*pages.RouteDefinition, ambient string) map[string][]*pages.RouteDefinition {
	byScope := make(map[string][]*pages.RouteDefinition)
	for _, route := range routes {
		scope := route.Scope
		if scope == "" {
			scope = ambient
		}
		byScope[scope] = append(byScope[scope], route)
	}
	return byScope
}

// mergeRoutes appends incoming top-level routes, overwriting an existing
// route with the same path (last wins).
func mergeRoutes(existing, incoming []*pages.RouteDefinition) []*pages.RouteDefinition {
	for _, route := range incoming {
		replaced := false
		for i, have := range existing {
			if have.Path == route.Path {
				existing[i] = route
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, route)
		}
	}
	return existing
}
