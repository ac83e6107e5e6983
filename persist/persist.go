// SPDX-License-Identifier: MIT
// Package: netgrowth/persist
//
// persist.go - edge file writer and reader.

package persist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/metrics"
)

// Delimiter separates fields in an edge file.
const Delimiter = ';'

// Header is the first line of every edge file.
var Header = []string{"node1", "node2", "degreeCount", "max_cc", "diameter", "clustering_coefficient"}

var (
	// ErrMalformedRow indicates a data row without two integer endpoints.
	ErrMalformedRow = errors.New("persist: malformed row")
	// ErrMissingHeader indicates an input whose first line is not a header
	// starting with the node1 and node2 columns.
	ErrMissingHeader = errors.New("persist: missing header")
	// ErrNilArgument indicates a nil graph or report passed to Write.
	ErrNilArgument = errors.New("persist: nil argument")
)

// Write renders g and its metrics report r to w.
func Write(w io.Writer, g *core.Graph, r *metrics.Report) error {
	if g == nil || r == nil {
		return fmt.Errorf("Write: %w", ErrNilArgument)
	}
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}
	diameter, ok := r.DiameterValue()
	for i, e := range g.Edges() {
		row := []string{strconv.Itoa(e.U), strconv.Itoa(e.V)}
		if i == 0 {
			row = append(row,
				FormatHistogram(r.Histogram),
				FormatNodes(r.Largest),
				FormatOptionalInt(diameter, ok),
				FormatFloat(r.Clustering),
			)
		}
		// trailing empty field yields the terminating ';'
		row = append(row, "")
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("Write: edge %d-%d: %w", e.U, e.V, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("Write: flush: %w", err)
	}

	return nil
}

// Read rebuilds a graph from the endpoint columns of an edge file.
// Metrics columns are ignored.
func Read(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Read: %w", ErrMissingHeader)
		}
		return nil, fmt.Errorf("Read: header: %w", err)
	}
	if !isHeader(head) {
		return nil, fmt.Errorf("Read: first line %q: %w", strings.Join(head, string(Delimiter)), ErrMissingHeader)
	}

	g := core.NewGraph()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		u, v, err := endpoints(rec)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		if _, err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
	}

	return g, nil
}

// isHeader checks the endpoint columns only; metric column names are not read.
func isHeader(rec []string) bool {
	return len(rec) >= 2 &&
		strings.TrimSpace(rec[0]) == Header[0] &&
		strings.TrimSpace(rec[1]) == Header[1]
}

func endpoints(rec []string) (int, int, error) {
	if len(rec) < 2 {
		return 0, 0, fmt.Errorf("%d fields: %w", len(rec), ErrMalformedRow)
	}
	u, err := strconv.Atoi(rec[0])
	if err != nil {
		return 0, 0, fmt.Errorf("node1 %q: %w", rec[0], ErrMalformedRow)
	}
	v, err := strconv.Atoi(rec[1])
	if err != nil {
		return 0, 0, fmt.Errorf("node2 %q: %w", rec[1], ErrMalformedRow)
	}

	return u, v, nil
}

// Save writes g and r to the file at path, replacing it.
func Save(path string, g *core.Graph, r *metrics.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save: close: %w", cerr)
		}
	}()

	return Write(f, g, r)
}

// Load reads the edge file at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// FileName returns the default edge file name graph_<n>_<k>_<c>.csv.
func FileName(nodes, iterations int, c float64) string {
	return fmt.Sprintf("graph_%d_%d_%s.csv", nodes, iterations, strconv.FormatFloat(c, 'g', -1, 64))
}
