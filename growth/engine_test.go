// SPDX-License-Identifier: MIT

package growth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/growth"
)

// Scenario: path 0-1-2-3, one iteration, c=1.
//
//	draw 1 -> IntN(4) = 1       node 1, degree 2, p = 2/3
//	draw 0 -> Float64 = 0.0     0.0 < 2/3 selects Adamic-Adar
//	distance-2 set {3}, score(3) = 1/ln 2, edge (1,3) added
func TestRun_ScenarioAdamicAdar(t *testing.T) {
	g := path4(t)
	src := script(1, 0)
	obs := new(mockObserver)
	want := growth.Attachment{Step: 0, Node: 1, Target: 3, Mechanism: growth.AdamicAdar, Added: true}
	obs.On("OnAttachment", want).Once()

	sum, err := growth.NewEngine(growth.WithSource(src), growth.WithObserver(obs)).Run(g, 1, 1)
	require.NoError(t, err)

	obs.AssertExpectations(t)
	assert.Zero(t, src.remaining())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}, g.Edges())
	assert.Equal(t, 1, sum.AdamicAdar)
	assert.Equal(t, 0, sum.Preferential)
	assert.Equal(t, 1, sum.Added)
	assert.Equal(t, 3, sum.EdgesBefore)
	assert.Equal(t, 4, sum.EdgesAfter)
}

// Scenario: path 0-1-2-3, one iteration, c=1.
//
//	draw 3     -> IntN(4) = 3     node 3, degree 1, p = 1/2
//	draw 1<<52 -> Float64 = 0.5   0.5 is not < 0.5, preferential attachment
//	weights [4 6 6] over [0 1 2], draw 0 picks 0, edge (0,3) added
func TestRun_ScenarioPreferential(t *testing.T) {
	g := path4(t)
	src := script(3, half, 0)
	obs := new(mockObserver)
	want := growth.Attachment{Step: 0, Node: 3, Target: 0, Mechanism: growth.PreferentialAttachment, Added: true}
	obs.On("OnAttachment", want).Once()

	sum, err := growth.NewEngine(growth.WithSource(src), growth.WithObserver(obs)).Run(g, 1, 1)
	require.NoError(t, err)

	obs.AssertExpectations(t)
	assert.Zero(t, src.remaining())
	assert.True(t, g.HasEdge(0, 3))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 1, sum.Preferential)
}

// Scenario: two steps on one source.
//
//	step 0: draws 1, 0 -> node 1, Adamic-Adar adds (1,3)
//	step 1: draws 0, 0 -> node 0 (degree 1, p = 1/2), Adamic-Adar;
//	        candidates {2,3} both score 1/ln 3 + 1/ln 2, the tie goes to 2
func TestRun_ScenarioTwoSteps(t *testing.T) {
	g := path4(t)
	src := script(1, 0, 0, 0)

	var got []growth.Attachment
	rec := growth.ObserverFunc(func(a growth.Attachment) { got = append(got, a) })

	sum, err := growth.NewEngine(growth.WithSource(src), growth.WithObserver(rec)).Run(g, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []growth.Attachment{
		{Step: 0, Node: 1, Target: 3, Mechanism: growth.AdamicAdar, Added: true},
		{Step: 1, Node: 0, Target: 2, Mechanism: growth.AdamicAdar, Added: true},
	}, got)
	assert.Zero(t, src.remaining())
	assert.Equal(t, 2, sum.Steps())
	assert.Equal(t, 5, sum.EdgesAfter)
}

func TestRun_InvalidParameters(t *testing.T) {
	single := core.NewGraph()
	single.AddNode(0)

	cases := []struct {
		name  string
		eng   *growth.Engine
		g     *core.Graph
		iters int
		c     float64
		want  error
	}{
		{"c zero", growth.NewEngine(growth.WithSeed(1)), path4(t), 1, 0, growth.ErrInvalidParameter},
		{"c negative", growth.NewEngine(growth.WithSeed(1)), path4(t), 1, -2, growth.ErrInvalidParameter},
		{"iterations zero", growth.NewEngine(growth.WithSeed(1)), path4(t), 0, 1, growth.ErrInvalidParameter},
		{"iterations negative", growth.NewEngine(growth.WithSeed(1)), path4(t), -3, 1, growth.ErrInvalidParameter},
		{"nil graph", growth.NewEngine(growth.WithSeed(1)), nil, 1, 1, growth.ErrInvalidParameter},
		{"no source", growth.NewEngine(), path4(t), 1, 1, growth.ErrInvalidParameter},
		{"single node", growth.NewEngine(growth.WithSeed(1)), single, 1, 1, core.ErrInsufficientNodes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var before []core.Edge
			if tc.g != nil {
				before = tc.g.Edges()
			}
			sum, err := tc.eng.Run(tc.g, tc.iters, tc.c)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, sum)
			if tc.g != nil {
				assert.Equal(t, before, tc.g.Edges(), "graph must be untouched")
			}
		})
	}
}

func TestRun_Invariants(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Initializer(30))
		require.NoError(t, err)
		nodes := g.Nodes()
		edgesBefore := g.EdgeCount()

		sum, err := growth.NewEngine(growth.WithSeed(seed)).Run(g, 150, 1)
		require.NoError(t, err)

		assert.Equal(t, nodes, g.Nodes(), "node set is fixed during growth")
		edges := g.Edges()
		assert.Len(t, edges, g.EdgeCount())
		for _, e := range edges {
			assert.Less(t, e.U, e.V, "normalized edge without self-loop")
		}
		degSum := 0
		for _, d := range g.Degrees() {
			degSum += d
		}
		assert.Equal(t, 2*g.EdgeCount(), degSum)

		assert.Equal(t, 150, sum.Steps())
		assert.Equal(t, 150, sum.Added+sum.Duplicates)
		assert.Equal(t, g.EdgeCount()-edgesBefore, sum.Added)
		assert.LessOrEqual(t, sum.NoSecondDegree+sum.DegreeOneNeighbor, sum.AdamicAdar)
	}
}

func TestRun_Deterministic(t *testing.T) {
	run := func() []core.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.Initializer(25))
		require.NoError(t, err)
		_, err = growth.NewEngine(growth.WithSeed(11)).Run(g, 80, 0.5)
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, run(), run())
}

func TestRun_Logging(t *testing.T) {
	zc, logs := observer.New(zap.DebugLevel)
	eng := growth.NewEngine(
		growth.WithSource(script(1, 0)),
		growth.WithLogger(zap.New(zc)),
		growth.WithRunID("run-test"),
	)

	_, err := eng.Run(path4(t), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "run-test", eng.RunID())
	assert.Equal(t, 1, logs.FilterMessage("growth started").Len())
	assert.Equal(t, 1, logs.FilterMessage("growth finished").Len())
	steps := logs.FilterMessage("growth step").All()
	require.Len(t, steps, 1)
	fields := steps[0].ContextMap()
	assert.Equal(t, "run-test", fields["run_id"])
	assert.Equal(t, "adamic_adar", fields["mechanism"])
	assert.Equal(t, int64(3), fields["target"])
}

func TestNewEngine_GeneratesRunID(t *testing.T) {
	a, b := growth.NewEngine(), growth.NewEngine()
	assert.NotEmpty(t, a.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { growth.WithSource(nil) })
	assert.Panics(t, func() { growth.WithLogger(nil) })
	assert.Panics(t, func() { growth.WithObserver(nil) })
}
