// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for netgrowth/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/netgrowth/core"
)

// Common node IDs used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3
	Node4 = 4

	NodeMissing = 99
)

// NewTriangle RETURNS the complete graph K3 over {0,1,2}.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]int{{Node0, Node1}, {Node1, Node2}, {Node2, Node0}} {
		_, err := g.AddEdge(e[0], e[1])
		MustErrorNil(t, err, "AddEdge triangle")
	}

	return g
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", ctx, target, err)
	}
}

// MustErrorNil FAILS the test if err != nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", ctx, got, want)
	}
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}

// MustDeepEqual FAILS the test if !reflect.DeepEqual(got, want).
func MustDeepEqual(t *testing.T, got, want interface{}, ctx string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}
