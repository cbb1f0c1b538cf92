// Package pages turns a flat list of discovered page-component files into
// nested route definition trees for a client-side router.
//
// The package provides:
//   - File classification (ordinary page, layout, parent/outlet, scope)
//   - Directory grouping with deterministic iteration order
//   - Recursive route tree construction with layout attachment,
//     parent/outlet wrapping and orphan-directory promotion
//   - Pure path/name derivation for dynamic segments, catch-alls,
//     route groups, index files and flat (underscore) paths
//
// # File Structure Convention
//
// Routes are defined by component files in a pages directory:
//
//	pages/
//	├── index.vue            → /
//	├── about.vue            → /about
//	├── layout.vue           → layout for sibling pages
//	├── users.vue            → /users (nests the users/ directory)
//	├── users/
//	│   ├── index.vue        → /users (default child)
//	│   └── [id].vue         → /users/:id
//	├── (admin)/
//	│   └── settings.vue     → /settings (group elided)
//	├── users_[id]_edit.vue  → /users/:id/edit (flat path)
//	└── @billing/
//	    └── invoice.vue      → /invoice, scope "billing"
//
// # Usage
//
//	routes := pages.BuildRoutes(files, pages.Options{
//	    BaseDir:    "/project/pages",
//	    Scope:      "global",
//	    LayoutFile: "layout.vue",
//	    ParentFile: "parent.vue",
//	    Extensions: []string{".vue"},
//	})
//
// The algorithm is synchronous and holds no state between calls; each
// invocation builds a fresh tree from the snapshot of files it is given.
package pages
