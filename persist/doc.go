// Package persist saves and loads grown graphs in the ';'-delimited edge
// file format:
//
//	node1;node2;degreeCount;max_cc;diameter;clustering_coefficient
//	0;1;{2: 3, 1: 2};[0, 1, 2, 3, 4];4;0.0;
//	1;2;
//	...
//
// One row per edge, sorted by (node1, node2). The metrics fields appear on
// the first data row only, followed by a trailing ';'. Later rows carry the
// two endpoints and a trailing ';'. Field values use the rendering of the
// files this format came from:
//
//   - degreeCount: {degree: count, ...} in descending degree order.
//   - max_cc:      [id, id, ...] in component discovery order.
//   - diameter:    an integer, or None when the graph is disconnected.
//   - floats:      shortest round-trip form, always with a '.' or exponent.
//
// Loading reads only the first two columns of every row after the header.
package persist
