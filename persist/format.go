// SPDX-License-Identifier: MIT
// Package: netgrowth/persist
//
// format.go - text rendering of metric values.

package persist

import (
	"sort"
	"strconv"
	"strings"
)

// Undefined is the rendering of a metric that has no value.
const Undefined = "None"

// FormatHistogram renders h as {degree: count, ...}, highest degree first.
func FormatHistogram(h map[int]int) string {
	degrees := make([]int, 0, len(h))
	for d := range h {
		degrees = append(degrees, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	var b strings.Builder
	b.WriteByte('{')
	for i, d := range degrees {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(h[d]))
	}
	b.WriteByte('}')

	return b.String()
}

// FormatNodes renders ids as [a, b, ...] keeping their order.
func FormatNodes(ids []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte(']')

	return b.String()
}

// FormatFloat renders f in shortest round-trip form. Integral values keep a
// ".0" suffix; exponents are used below 1e-4 and from 1e16 up.
func FormatFloat(f float64) string {
	abs := f
	if abs < 0 {
		abs = -abs
	}
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}

	return s
}

// FormatOptionalInt renders v, or Undefined when ok is false.
func FormatOptionalInt(v int, ok bool) string {
	if !ok {
		return Undefined
	}

	return strconv.Itoa(v)
}

// FormatOptionalFloat renders v with FormatFloat, or Undefined when ok is false.
func FormatOptionalFloat(v float64, ok bool) string {
	if !ok {
		return Undefined
	}

	return FormatFloat(v)
}
