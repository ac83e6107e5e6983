// SPDX-License-Identifier: MIT
// Package: netgrowth/frames
//
// recorder.go - per-step edge snapshots.

package frames

import (
	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/growth"
)

// Frame is the state after one growth step.
type Frame struct {
	Step      int      `json:"step"`
	Node      int      `json:"node"`
	Target    int      `json:"target"`
	Mechanism string   `json:"mechanism"`
	Fallback  string   `json:"fallback,omitempty"`
	Added     bool     `json:"added"`
	Edges     [][2]int `json:"edges"`
}

// Recorder collects one Frame per Attachment. It reads the graph it was
// created with, so it must observe the engine that mutates that graph.
type Recorder struct {
	g      *core.Graph
	frames []Frame
}

var _ growth.Observer = (*Recorder)(nil)

// NewRecorder returns a Recorder bound to g.
func NewRecorder(g *core.Graph) *Recorder {
	return &Recorder{g: g}
}

// OnAttachment snapshots the current edge set.
func (r *Recorder) OnAttachment(a growth.Attachment) {
	f := Frame{
		Step:      a.Step,
		Node:      a.Node,
		Target:    a.Target,
		Mechanism: a.Mechanism.String(),
		Added:     a.Added,
		Edges:     edgePairs(r.g.Edges()),
	}
	if a.Fallback != growth.NoFallback {
		f.Fallback = a.Fallback.String()
	}
	r.frames = append(r.frames, f)
}

// Frames returns the recorded frames in step order.
func (r *Recorder) Frames() []Frame { return r.frames }

func edgePairs(edges []core.Edge) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.U, e.V}
	}

	return out
}
