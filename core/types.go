// SPDX-License-Identifier: MIT
// Package: netgrowth/core
//
// types.go - Graph and Edge types, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidEdge       - self-loop attempted (u == v).
//	ErrNodeNotFound      - requested node does not exist.
//	ErrInsufficientNodes - graph too small for the requested operation.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates a self-loop was attempted; the graph is simple.
	ErrInvalidEdge = errors.New("core: self-loop edge not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrInsufficientNodes indicates the graph holds fewer nodes than an
	// operation needs (attachment needs 2, random seeding needs 4,
	// traversal-based metrics need 1).
	ErrInsufficientNodes = errors.New("core: insufficient nodes")
)

// Edge is an unordered node pair, normalized so that U < V.
type Edge struct {
	U int
	V int
}

// NewEdge returns the normalized Edge for the pair {a,b}.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Graph is a simple undirected graph keyed by integer node IDs.
//
// adjacency[u][v] exists iff adjacency[v][u] exists; isolated nodes keep an
// empty inner map so they are still members of the node set.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[int]map[int]struct{}),
	}
}
