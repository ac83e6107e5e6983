package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/dfs"
)

// buildChain creates an undirected chain graph of length n: 0-1-2-…-n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	g.AddNode(0)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	res, err := dfs.DFS(g, 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_SingleNode(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(4)

	res, err := dfs.DFS(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, res.Order)
	assert.True(t, res.Visited[4])
	assert.Equal(t, [][]int{{4}}, res.Components)
}

func TestDFS_PreOrderLargestNeighborFirst(t *testing.T) {
	// star-ish: 0 connects to 1,2,3; 1 connects to 4
	g := core.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 4)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	// stack after 0: [1 2 3] → pop 3, then 2, then 1 → push 4 → pop 4
	assert.Equal(t, []int{0, 3, 2, 1, 4}, res.Order)
}

func TestDFS_LongChainIsIterative(t *testing.T) {
	const n = 50000
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Order[n-1])
}

func TestDFS_OnVisitAbort(t *testing.T) {
	g := buildChain(5)
	stop := errors.New("stop")
	var seen []int
	_, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(id int) error {
		seen = append(seen, id)
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(5, 6)
	g.AddEdge(6, 7)
	g.AddNode(3)

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {3}, {5, 6, 7}}, comps)

	largest, err := dfs.Largest(g)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7}, largest)
}

func TestLargest_TieFirstDiscovered(t *testing.T) {
	// two disjoint 2-node components
	g := core.NewGraph()
	g.AddEdge(2, 3)
	g.AddEdge(0, 1)

	largest, err := dfs.Largest(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, largest)
}

func TestLargest_EmptyGraph(t *testing.T) {
	largest, err := dfs.Largest(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, largest)
}

func TestLargestOf(t *testing.T) {
	assert.Nil(t, dfs.LargestOf(nil))
	assert.Equal(t, []int{2, 3}, dfs.LargestOf([][]int{{0}, {2, 3}, {4, 5}, {1}}))
	assert.Equal(t, []int{4, 5, 6}, dfs.LargestOf([][]int{{0, 1}, {4, 5, 6}}))
}
