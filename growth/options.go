// SPDX-License-Identifier: MIT
// Package: netgrowth/growth
//
// options.go - functional options for Engine.
//
// Option constructors panic on nil arguments; Run never panics.

package growth

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source driving node sampling, the coin flip
// and preferential draws. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("growth: WithSource(nil)")
	}
	return func(e *Engine) {
		e.src = src
	}
}

// WithSeed sets a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.src = rand.NewPCG(seed, seed)
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("growth: WithLogger(nil)")
	}
	return func(e *Engine) {
		e.log = l
	}
}

// WithObserver registers o to receive every applied Attachment, in
// registration order. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("growth: WithObserver(nil)")
	}
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
	}
}
