// Package dfs implements iterative depth-first search (single-source and forest)
// and connected-component discovery on core.Graph.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Explicit stack: no recursion, so long paths cannot exhaust the goroutine stack
//   - OnVisit pre-order hook with error abort
//   - Components / Largest: connected components in discovery order
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus neighbor sorting in core.
//   - Memory: O(V + E) for the explicit stack and visited set.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Returns Result or an error if aborted by the hook.
func DFS(g *core.Graph, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Visited: make(map[int]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range g.Nodes() {
			if res.Visited[v] {
				continue
			}
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(startID); err != nil {
		return res, err
	}

	return res, nil
}

// traverse explores the component of root with an explicit stack and appends
// it to res.Components. A node is recorded when popped for the first time.
func (w *dfsWalker) traverse(root int) error {
	var component []int
	stack := []int{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.res.Visited[cur] {
			continue
		}
		w.res.Visited[cur] = true
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", cur, err)
			}
		}
		w.res.Order = append(w.res.Order, cur)
		component = append(component, cur)
		for _, nbr := range w.graph.Neighbors(cur) {
			if !w.res.Visited[nbr] {
				stack = append(stack, nbr)
			}
		}
	}
	w.res.Components = append(w.res.Components, component)

	return nil
}

// Components returns every connected component of g, each in discovery
// order, with components ordered by their smallest starting node.
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]int, error) {
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	return res.Components, nil
}

// Largest returns the component with the most nodes. Ties resolve to the
// first discovered component. An empty graph yields nil.
func Largest(g *core.Graph) ([]int, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}

	return LargestOf(comps), nil
}

// LargestOf returns the first component of maximal size in comps, or nil.
func LargestOf(comps [][]int) []int {
	var best []int
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}
