package meshview

import "github.com/go-gl/mathgl/mgl64"

// AffineParams packs a composite transform as
//
//	[0] translation   tx, ty, tz
//	[1] rotation      rx, ry, rz (radians)
//	[2] scale         s, unused, unused
type AffineParams [3][3]float64

func NewAffineParams(translate, rotate mgl64.Vec3, scale float64) AffineParams {
	return AffineParams{
		{translate[0], translate[1], translate[2]},
		{rotate[0], rotate[1], rotate[2]},
		{scale, 0, 0},
	}
}

func (p AffineParams) Translation() mgl64.Vec3 {
	return mgl64.Vec3{p[0][0], p[0][1], p[0][2]}
}

func (p AffineParams) Rotation() mgl64.Vec3 {
	return mgl64.Vec3{p[1][0], p[1][1], p[1][2]}
}

func (p AffineParams) ScaleFactor() float64 {
	return p[2][0]
}

// ApplyAffine applies, in order, translation on X, Y and Z, rotation about
// X, Y and Z, then the uniform scale. Translations therefore happen in the
// unrotated frame.
func (m *Mesh) ApplyAffine(p AffineParams) {
	m.TranslateAxis(AxisX, p[0][0])
	m.TranslateAxis(AxisY, p[0][1])
	m.TranslateAxis(AxisZ, p[0][2])
	m.RotateAxis(AxisX, p[1][0])
	m.RotateAxis(AxisY, p[1][1])
	m.RotateAxis(AxisZ, p[1][2])
	m.Scale(p[2][0])
}

// Matrix returns the homogeneous matrix that maps a vertex the same way
// ApplyAffine does. A scale <= 0 contributes the identity.
func (p AffineParams) Matrix() mgl64.Mat4 {
	t := p.Translation()
	r := p.Rotation()

	s := mgl64.Ident4()
	if f := p.ScaleFactor(); f > 0 {
		s = mgl64.Scale3D(f, f, f)
	}

	return s.
		Mul4(mgl64.HomogRotate3DZ(r[2])).
		Mul4(mgl64.HomogRotate3DY(r[1])).
		Mul4(mgl64.HomogRotate3DX(r[0])).
		Mul4(mgl64.Translate3D(t[0], t[1], t[2]))
}
