package meshview

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestApplyAffineOrder(t *testing.T) {
	// Translate then rotate differs from rotate then translate, so the
	// expected value pins the order.
	m := NewMesh()
	m.LoadReader(stringsReader("v 1 0 0\n"))

	m.ApplyAffine(NewAffineParams(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, math.Pi / 2}, 2))

	// (1,0,0) -> (2,0,0) -> rotate Z 90 -> (0,2,0) -> scale 2 -> (0,4,0)
	if got := m.Vertex(1); !vecAlmostEqual(got, mgl64.Vec3{0, 4, 0}) {
		t.Errorf("vertex = %v, want (0,4,0)", got)
	}
}

func TestApplyAffineMatchesSteps(t *testing.T) {
	p := AffineParams{
		{0.5, -1, 2},
		{0.3, -1.2, 2.2},
		{1.7, 0, 0},
	}

	got := Load("testdata/quads.obj")
	got.ApplyAffine(p)

	want := Load("testdata/quads.obj")
	want.TranslateAxis(AxisX, 0.5)
	want.TranslateAxis(AxisY, -1)
	want.TranslateAxis(AxisZ, 2)
	want.RotateAxis(AxisX, 0.3)
	want.RotateAxis(AxisY, -1.2)
	want.RotateAxis(AxisZ, 2.2)
	want.Scale(1.7)

	assertVerticesNear(t, got, snapshotVertices(want))
}

func TestAffineMatrixMatchesApplyAffine(t *testing.T) {
	testCases := []struct {
		name string
		p    AffineParams
	}{
		{"identity scale", NewAffineParams(mgl64.Vec3{}, mgl64.Vec3{}, 1)},
		{"translate only", NewAffineParams(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, 1)},
		{"everything", NewAffineParams(mgl64.Vec3{-1, 0.5, 4}, mgl64.Vec3{0.4, 1.3, -2}, 0.75)},
		{"ignored scale", NewAffineParams(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{1, 1, 1}, -3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Load("testdata/cube.obj")
			before := snapshotVertices(m)
			m.ApplyAffine(tc.p)

			mat := tc.p.Matrix()
			for i, v := range before {
				want := mat.Mul4x1(v.Vec4(1)).Vec3()
				if got := m.Vertex(i + 1); !vecAlmostEqual(got, want) {
					t.Errorf("vertex %d = %v, matrix gives %v", i+1, got, want)
				}
			}
		})
	}
}

func TestAffineParamsAccessors(t *testing.T) {
	p := NewAffineParams(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}, 7)
	if p.Translation() != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Translation() = %v", p.Translation())
	}
	if p.Rotation() != (mgl64.Vec3{4, 5, 6}) {
		t.Errorf("Rotation() = %v", p.Rotation())
	}
	if p.ScaleFactor() != 7 {
		t.Errorf("ScaleFactor() = %v", p.ScaleFactor())
	}
	if p[2][1] != 0 || p[2][2] != 0 {
		t.Errorf("unused slots = %v", p[2])
	}
}
