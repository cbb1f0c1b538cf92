// Package dev implements the development server: it watches pages roots,
// rebuilds the route trees on change, serves the generated modules over
// HTTP, and pushes reload notifications to connected clients.
package dev
