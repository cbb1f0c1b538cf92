// Package driver defines the rendering contract between the route tree
// builder and target UI frameworks.
//
// A driver owns everything framework-specific: which file suffixes count
// as routable components, which base names are the layout and parent
// special files, and how a finished RouteDefinition tree is rendered to
// source text. The tree-building core never branches on framework
// identity; it calls into whichever driver the caller resolved.
//
// Two drivers ship with the module: Vue (vue-router record arrays) and
// React (react-router object routes with lazy imports).
package driver
