package meshview

import (
	"errors"
	"math"
)

// The canonical viewport is the cube [-1.5, 1.5] on every axis.
const (
	ViewportMin  = -1.5
	ViewportMax  = 1.5
	ViewportSpan = ViewportMax - ViewportMin
)

var ErrDegenerateBounds = errors.New("meshview: bounding box has no extent")

// FitToViewport recenters the mesh on the origin and scales it uniformly so
// its largest extent spans ViewportSpan. It works from the bounding box
// tracked at load time and does not refresh it afterwards.
//
// A mesh whose largest extent is zero, or whose bounds were never set, is
// left untouched and ErrDegenerateBounds is returned.
func (m *Mesh) FitToViewport() error {
	span := m.bounds.MaxExtent()
	if !(span > 0) || math.IsInf(span, 0) {
		return ErrDegenerateBounds
	}

	zoom := ViewportSpan / span
	center := m.bounds.Center()

	for i := 1; i <= m.vertexCount; i++ {
		for axis := 0; axis < 3; axis++ {
			m.vertices[i][axis] = (m.vertices[i][axis] - center[axis]) * zoom
		}
	}
	return nil
}

// MeasureBounds scans the current vertices and returns their extents. The
// tracked bounding box is not changed.
func (m *Mesh) MeasureBounds() BoundingBox {
	b := EmptyBoundingBox()
	for i := 1; i <= m.vertexCount; i++ {
		b.Extend(m.vertices[i])
	}
	return b
}
