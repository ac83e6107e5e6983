// Package builder provides functional-options building blocks that populate a
// core.Graph with deterministic or seeded topologies.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph:   new graph + constructors applied in order.
//     – Apply:        constructors applied to an existing graph.
//   - Configuration:
//     – BuilderOption: WithSeed, WithSource, WithRand, WithSeedEdgeRange.
//   - Deterministic topologies (IDs 0..n-1):
//     – Nodes, Path, Cycle, Star, Complete.
//   - Stochastic topologies (require an RNG):
//     – RandomSparse:    Erdős–Rényi-like G(n,p).
//     – RandomSeedEdges: k attempts joining members of a 4-node random group.
//     – Initializer:     n isolated nodes plus a random number (4..16 by
//     default) of seeding attempts. This is the starting state of a growth run.
//
// Guarantees:
//
//   - Idempotent: re-running a constructor never duplicates nodes or edges.
//   - Fast-fail on invalid option parameters via panics in WithX constructors.
//   - Runtime validation errors wrap sentinels (ErrTooFewVertices, ...).
//   - Same seed and constructor order give the same graph.
package builder
