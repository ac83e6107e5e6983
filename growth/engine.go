// SPDX-License-Identifier: MIT
// Package: netgrowth/growth
//
// engine.go - the iterative growth driver.
//
// Contract:
//   - Preconditions are checked once, before any mutation.
//   - The node list is fixed at entry; only edges are added.
//   - The first failing step aborts the run and its error is returned.

package growth

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/netgrowth/core"
)

// Observer receives each Attachment after the edge has been applied.
type Observer interface {
	OnAttachment(a Attachment)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(a Attachment)

// OnAttachment calls f(a).
func (f ObserverFunc) OnAttachment(a Attachment) { f(a) }

// Engine runs growth steps against a caller-owned graph.
// An Engine is not safe for concurrent use.
type Engine struct {
	src       rand.Source
	rng       *rand.Rand
	log       *zap.Logger
	observers []Observer
	runID     string
}

// NewEngine builds an Engine. Without WithSource or WithSeed, Run fails
// with ErrInvalidParameter.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.src != nil {
		e.rng = rand.New(e.src)
	}
	if e.runID == "" {
		e.runID = uuid.NewString()
	}
	e.log = e.log.With(zap.String("run_id", e.runID))

	return e
}

// RunID returns the identifier attached to every log line of this engine.
func (e *Engine) RunID() string { return e.runID }

// Run performs iterations growth steps on g with balance constant c.
// g is mutated in place.
//
// Errors:
//   - ErrInvalidParameter: nil g, iterations ≤ 0, c ≤ 0, no source.
//   - core.ErrInsufficientNodes: g has fewer than two nodes.
//   - any step error, wrapped with its step index.
func (e *Engine) Run(g *core.Graph, iterations int, c float64) (*Summary, error) {
	switch {
	case g == nil:
		return nil, fmt.Errorf("Run: nil graph: %w", ErrInvalidParameter)
	case iterations <= 0:
		return nil, fmt.Errorf("Run: iterations=%d must be > 0: %w", iterations, ErrInvalidParameter)
	case c <= 0:
		return nil, fmt.Errorf("Run: c=%g must be > 0: %w", c, ErrInvalidParameter)
	case e.src == nil:
		return nil, fmt.Errorf("Run: nil source: %w", ErrInvalidParameter)
	}
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return nil, fmt.Errorf("Run: have %d nodes, need 2: %w", len(nodes), core.ErrInsufficientNodes)
	}

	sum := &Summary{RunID: e.runID, Nodes: len(nodes), EdgesBefore: g.EdgeCount()}
	e.log.Info("growth started",
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", sum.EdgesBefore),
		zap.Int("iterations", iterations),
		zap.Float64("c", c),
	)

	for i := 0; i < iterations; i++ {
		a, err := e.step(g, nodes, c)
		if err != nil {
			e.log.Error("growth step failed", zap.Int("step", i), zap.Error(err))
			return nil, fmt.Errorf("Run: step %d: %w", i, err)
		}
		a.Step = i
		sum.record(a)
		e.log.Debug("growth step",
			zap.Int("step", i),
			zap.Int("node", a.Node),
			zap.Int("target", a.Target),
			zap.Stringer("mechanism", a.Mechanism),
			zap.Stringer("fallback", a.Fallback),
			zap.Bool("added", a.Added),
		)
		for _, o := range e.observers {
			o.OnAttachment(a)
		}
	}
	sum.EdgesAfter = g.EdgeCount()

	e.log.Info("growth finished",
		zap.Int("edges", sum.EdgesAfter),
		zap.Int("added", sum.Added),
		zap.Int("duplicates", sum.Duplicates),
		zap.Int("adamic_adar", sum.AdamicAdar),
		zap.Int("preferential", sum.Preferential),
	)

	return sum, nil
}

// step samples a node, flips the coin and applies one mechanism.
func (e *Engine) step(g *core.Graph, nodes []int, c float64) (Attachment, error) {
	node := nodes[e.rng.IntN(len(nodes))]
	p, err := Probability(g, node, c)
	if err != nil {
		return Attachment{}, err
	}
	if e.rng.Float64() < p {
		return predict(g, node, e.src)
	}

	return attachPreferential(g, node, e.src)
}
