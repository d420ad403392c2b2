package meshview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoundingBox is an axis-aligned box. An empty box has Min at +Inf and Max at
// -Inf so the first point extended into it sets both corners.
type BoundingBox struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func EmptyBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to contain p. NaN coordinates never move a bound.
func (b *BoundingBox) Extend(p mgl64.Vec3) {
	for axis := range p {
		if p[axis] < b.Min[axis] {
			b.Min[axis] = p[axis]
		}
		if p[axis] > b.Max[axis] {
			b.Max[axis] = p[axis]
		}
	}
}

// IsEmpty reports whether no point has been added on some axis.
func (b BoundingBox) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

func (b BoundingBox) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center is computed per axis as min + (max-min)/2.
func (b BoundingBox) Center() mgl64.Vec3 {
	var c mgl64.Vec3
	for axis := range c {
		c[axis] = b.Min[axis] + (b.Max[axis]-b.Min[axis])/2.0
	}
	return c
}

// MaxExtent returns the largest of the three side lengths.
func (b BoundingBox) MaxExtent() float64 {
	size := b.Size()
	return math.Max(math.Max(size[0], size[1]), size[2])
}
