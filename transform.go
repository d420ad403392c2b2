package meshview

import "math"

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "Axis(?)"
}

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// TranslateAxis moves every vertex by delta along axis.
func (m *Mesh) TranslateAxis(axis Axis, delta float64) {
	if !axis.valid() {
		return
	}
	for i := 1; i <= m.vertexCount; i++ {
		m.vertices[i][axis] += delta
	}
}

// RotateAxis rotates every vertex about axis by angle radians:
//
//	X: y' = cos·y - sin·z, z' = sin·y + cos·z
//	Y: x' = cos·x + sin·z, z' = -sin·x + cos·z
//	Z: x' = cos·x - sin·y, y' = sin·x + cos·y
func (m *Mesh) RotateAxis(axis Axis, angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)

	switch axis {
	case AxisX:
		for i := 1; i <= m.vertexCount; i++ {
			y, z := m.vertices[i][1], m.vertices[i][2]
			m.vertices[i][1] = cos*y - sin*z
			m.vertices[i][2] = sin*y + cos*z
		}
	case AxisY:
		for i := 1; i <= m.vertexCount; i++ {
			x, z := m.vertices[i][0], m.vertices[i][2]
			m.vertices[i][0] = cos*x + sin*z
			m.vertices[i][2] = -sin*x + cos*z
		}
	case AxisZ:
		for i := 1; i <= m.vertexCount; i++ {
			x, y := m.vertices[i][0], m.vertices[i][1]
			m.vertices[i][0] = cos*x - sin*y
			m.vertices[i][1] = sin*x + cos*y
		}
	}
}

// Scale multiplies every coordinate by factor. A factor <= 0 does nothing.
func (m *Mesh) Scale(factor float64) {
	if !(factor > 0) {
		return
	}
	for i := 1; i <= m.vertexCount; i++ {
		m.vertices[i] = m.vertices[i].Mul(factor)
	}
}
