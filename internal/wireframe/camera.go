package wireframe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/meshview"
)

// Camera looks from Eye towards Target. It projects with a perspective
// frustum of vertical angle FovY, or with an orthographic box HalfHeight
// units above and below the view axis when Parallel is set.
type Camera struct {
	Eye        mgl64.Vec3
	Target     mgl64.Vec3
	Up         mgl64.Vec3
	FovY       float64 // radians
	Near       float64
	Far        float64
	Parallel   bool
	HalfHeight float64
}

// DefaultCamera frames the canonical [-1.5, 1.5] viewport cube from distance
// units down the +Z axis.
func DefaultCamera(distance float64) Camera {
	return Camera{
		Eye:        mgl64.Vec3{0, 0, distance},
		Target:     mgl64.Vec3{0, 0, 0},
		Up:         mgl64.Vec3{0, 1, 0},
		FovY:       mgl64.DegToRad(45),
		Near:       0.1,
		Far:        100,
		HalfHeight: 2,
	}
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c Camera) Projection(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	if c.Parallel {
		h := c.HalfHeight
		return mgl64.Ortho(-h*aspect, h*aspect, -h, h, c.Near, c.Far)
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Segment is a line in screen space, origin at the top left.
type Segment struct {
	From, To mgl64.Vec2
}

type screenPoint struct {
	p       mgl64.Vec2
	visible bool
}

// screenPoints projects every vertex of m, indexed like the mesh. A vertex is
// visible when it lies further than Near in front of the eye.
func (c Camera) screenPoints(m *meshview.Mesh, model mgl64.Mat4, width, height int) []screenPoint {
	modelView := c.View().Mul4(model)
	projection := c.Projection(width, height)

	points := make([]screenPoint, m.VertexCount()+1)
	for i, v := range m.Vertices() {
		depth := -modelView.Mul4x1(v.Vec4(1))[2]
		if depth <= c.Near || math.IsNaN(depth) {
			continue
		}
		win := mgl64.Project(v, modelView, projection, 0, 0, width, height)
		points[i] = screenPoint{
			p:       mgl64.Vec2{win[0], float64(height) - win[1]},
			visible: true,
		}
	}
	return points
}

// Project maps every edge of m through model, the camera and a width x height
// viewport. Edges with an endpoint at or behind the camera plane are dropped.
func (c Camera) Project(m *meshview.Mesh, model mgl64.Mat4, width, height int) []Segment {
	points := c.screenPoints(m, model, width, height)

	var segments []Segment
	for _, e := range Edges(m) {
		a, b := points[e.A], points[e.B]
		if !a.visible || !b.visible {
			continue
		}
		segments = append(segments, Segment{From: a.p, To: b.p})
	}
	return segments
}

// ProjectVertices returns the screen position of every visible vertex of m,
// in vertex order.
func (c Camera) ProjectVertices(m *meshview.Mesh, model mgl64.Mat4, width, height int) []mgl64.Vec2 {
	var out []mgl64.Vec2
	for _, sp := range c.screenPoints(m, model, width, height) {
		if sp.visible {
			out = append(out, sp.p)
		}
	}
	return out
}

// Dash pattern in pixels: 8 on, 8 off.
const (
	DashLength = 8
	GapLength  = 8
)

// Dashes splits s into dash-long pieces separated by gap-long holes, starting
// with a dash at s.From. The last dash is cut short at s.To. A non-positive
// dash or gap returns s whole.
func Dashes(s Segment, dash, gap float64) []Segment {
	if !(dash > 0) || !(gap > 0) {
		return []Segment{s}
	}
	d := s.To.Sub(s.From)
	length := d.Len()
	if length == 0 {
		return nil
	}
	dir := d.Mul(1 / length)

	var out []Segment
	for start := 0.0; start < length; start += dash + gap {
		end := math.Min(start+dash, length)
		out = append(out, Segment{
			From: s.From.Add(dir.Mul(start)),
			To:   s.From.Add(dir.Mul(end)),
		})
	}
	return out
}
