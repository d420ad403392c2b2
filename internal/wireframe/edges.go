// Package wireframe turns a mesh into screen-space line segments.
package wireframe

import "github.com/smasonuk/meshview"

// Edge joins two 1-based vertex indices, always with A < B.
type Edge struct {
	A, B int
}

func newEdge(a, b int) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Edges returns every distinct polygon edge of m, closing edge included, in
// the order they are first met. Edges touching an index outside the vertex
// table and degenerate a-a edges are skipped.
func Edges(m *meshview.Mesh) []Edge {
	known := make(map[Edge]struct{})
	var edges []Edge

	add := func(a, b int) {
		if a == b || !inRange(a, m.VertexCount()) || !inRange(b, m.VertexCount()) {
			return
		}
		e := newEdge(a, b)
		if _, ok := known[e]; ok {
			return
		}
		known[e] = struct{}{}
		edges = append(edges, e)
	}

	for _, face := range m.Faces() {
		for i := range face {
			if i == 0 {
				continue
			}
			add(face[i-1], face[i])
		}
		if len(face) > 2 {
			add(face[len(face)-1], face[0])
		}
	}
	return edges
}

func inRange(i, n int) bool {
	return i >= 1 && i <= n
}
