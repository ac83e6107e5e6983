package bfs_test

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/netgrowth/bfs"
	"github.com/katalvlaran/netgrowth/core"
)

// path builds the undirected path 0-1-...-(n-1).
func path(n int) *core.Graph {
	g := core.NewGraph()
	g.AddNode(0)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start node not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartNodeNotFound) {
		t.Errorf("missing start: want ErrStartNodeNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g.AddNode(0)
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-node graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(5)
	res, err := bfs.BFS(g, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[5]; d != 0 {
		t.Errorf("Depth[5] = %d; want 0", d)
	}
	if e := res.Eccentricity(); e != 0 {
		t.Errorf("Eccentricity = %d; want 0", e)
	}
}

// TestBFS_CycleDepths covers a 4-cycle and checks depths and layer order.
func TestBFS_CycleDepths(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g := core.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for id, want := range map[int]int{0: 0, 1: 1, 3: 1, 2: 2} {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%d] = %d; want %d", id, got, want)
		}
	}
}

// TestBFS_AtDepthIsExact ensures a node reachable by a 2-hop walk but also
// adjacent to the start is reported at depth 1, not 2.
func TestBFS_AtDepthIsExact(t *testing.T) {
	// triangle 0-1-2 plus tail 2-3
	g := core.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.AtDepth(1), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("AtDepth(1) = %v; want %v", got, want)
	}
	if got, want := res.AtDepth(2), []int{3}; !reflect.DeepEqual(got, want) {
		t.Errorf("AtDepth(2) = %v; want %v", got, want)
	}
	if got := res.AtDepth(3); len(got) != 0 {
		t.Errorf("AtDepth(3) = %v; want empty", got)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start node.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1) // component 1
	g.AddEdge(2, 3) // component 2

	res0, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res0.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res0.Order)
	}
	res3, _ := bfs.BFS(g, 3)
	if !reflect.DeepEqual(res3.Order, []int{3, 2}) {
		t.Errorf("From 3: got %v; want [3 2]", res3.Order)
	}
}

// TestBFS_PathMetrics checks eccentricity and distance sums on a 5-path.
func TestBFS_PathMetrics(t *testing.T) {
	g := path(5)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Eccentricity(); got != 4 {
		t.Errorf("Eccentricity from end = %d; want 4", got)
	}
	if got := res.DistanceSum(); got != 0+1+2+3+4 {
		t.Errorf("DistanceSum from end = %d; want 10", got)
	}

	mid, _ := bfs.BFS(g, 2)
	if got := mid.Eccentricity(); got != 2 {
		t.Errorf("Eccentricity from middle = %d; want 2", got)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := path(3)
	// depth = 1 should only visit 0,1
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_OnVisit asserts that the hook fires in order and can abort.
func TestBFS_OnVisit(t *testing.T) {
	g := path(3)

	var vis []string
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, d int) error {
		vis = append(vis, strconv.Itoa(id)+"@"+strconv.Itoa(d))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"0@0", "1@1", "2@2"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit sequence = %v; want %v", vis, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want wrapped stop, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := path(4)
	g.AddNode(9)
	res, _ := bfs.BFS(g, 0)
	if p, _ := res.PathTo(0); !reflect.DeepEqual(p, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", p)
	}
	if p, _ := res.PathTo(3); !reflect.DeepEqual(p, []int{0, 1, 2, 3}) {
		t.Errorf("PathTo 3: got %v; want [0 1 2 3]", p)
	}
	_, err := res.PathTo(9)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}
