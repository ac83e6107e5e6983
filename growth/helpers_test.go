// SPDX-License-Identifier: MIT

package growth_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/growth"
)

// scriptedSource replays fixed Uint64 values and panics when exhausted.
//
// With a *rand.Rand on top of it (64-bit platforms):
//   - IntN(n) for n a power of two returns v & (n-1).
//   - Float64 returns (v<<11>>11) / 2^53, so 0 gives 0.0 and 1<<52 gives 0.5.
type scriptedSource struct {
	vals []uint64
	next int
}

func script(vals ...uint64) *scriptedSource { return &scriptedSource{vals: vals} }

func (s *scriptedSource) Uint64() uint64 {
	if s.next >= len(s.vals) {
		panic("scriptedSource: exhausted")
	}
	v := s.vals[s.next]
	s.next++

	return v
}

func (s *scriptedSource) remaining() int { return len(s.vals) - s.next }

// half is the raw draw that Float64 maps to exactly 0.5.
const half = uint64(1) << 52

// mockObserver records attachments through testify/mock.
type mockObserver struct{ mock.Mock }

func (m *mockObserver) OnAttachment(a growth.Attachment) { m.Called(a) }

// buildGraph creates a graph from an edge list plus optional isolated nodes.
func buildGraph(t *testing.T, edges [][2]int, isolated ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	for _, id := range isolated {
		g.AddNode(id)
	}

	return g
}

// path4 is the fixed scenario graph 0-1-2-3.
func path4(t *testing.T) *core.Graph {
	return buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
}
