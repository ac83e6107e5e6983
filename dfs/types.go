// Package dfs defines types and options for depth-first search traversal,
// including a pre-order hook and full-graph (forest) traversal.
package dfs

import (
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node ID
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// FullTraversal, if true, runs DFS from every unvisited node in ascending
	// ID order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns Options with no hook and single-source traversal.
func DefaultOptions() Options {
	return Options{
		OnVisit:       nil,
		FullTraversal: false,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFullTraversal returns an Option that makes DFS cover every component.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result holds the outcome of a DFS traversal.
//   - Order: nodes in discovery (pre-order) sequence.
//   - Visited: set of discovered nodes.
//   - Components: one slice per tree of the traversal forest, each in
//     discovery order; a single-source run yields exactly one component.
type Result struct {
	Order      []int
	Visited    map[int]bool
	Components [][]int
}
