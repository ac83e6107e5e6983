// Package frames records what a renderer needs to animate a growth run:
// one fixed 2-D position per node and the edge set after every step.
//
//   - Layout computes positions once, before growth, with gonum's Eades
//     force-directed optimizer. A fixed seed gives fixed positions.
//   - Recorder is a growth.Observer that snapshots the edge list after each
//     applied step.
//   - Document bundles both with the run identifier and is written as JSON.
//
// The package never renders anything itself.
package frames
