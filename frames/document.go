// SPDX-License-Identifier: MIT
// Package: netgrowth/frames
//
// document.go - the JSON artifact handed to renderers.

package frames

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/netgrowth/core"
)

// Document is the complete animation input of one run.
type Document struct {
	RunID     string        `json:"run_id"`
	Positions map[int]Point `json:"positions"`
	Initial   [][2]int      `json:"initial_edges"`
	Frames    []Frame       `json:"frames"`
}

// NewDocument captures positions and the initial edge set of g.
// Call it before growth starts; attach frames with WithFrames afterwards.
func NewDocument(runID string, g *core.Graph, positions map[int]Point) *Document {
	return &Document{
		RunID:     runID,
		Positions: positions,
		Initial:   edgePairs(g.Edges()),
	}
}

// WithFrames sets the recorded frames and returns d.
func (d *Document) WithFrames(frames []Frame) *Document {
	d.Frames = frames
	return d
}

// Encode writes d as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("frames: encode: %w", err)
	}

	return nil
}

// Save writes d to path.
func (d *Document) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("frames: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("frames: close: %w", cerr)
		}
	}()

	return d.Encode(f)
}

// Decode reads a Document written by Encode.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("frames: decode: %w", err)
	}

	return &d, nil
}

// FileName returns the default document name figure_<n>_<k>_<c>.json.
func FileName(nodes, iterations int, c float64) string {
	return fmt.Sprintf("figure_%d_%d_%s.json", nodes, iterations, strconv.FormatFloat(c, 'g', -1, 64))
}
