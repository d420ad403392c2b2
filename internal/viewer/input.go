package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/meshview"
	"github.com/smasonuk/meshview/internal/viewconfig"
)

var vertexDisplays = []string{viewconfig.VertexNone, viewconfig.VertexCircle, viewconfig.VertexSquare}

// nextVertexDisplay returns the marker shape that follows display.
func nextVertexDisplay(display string) string {
	for i, d := range vertexDisplays {
		if d == display {
			return vertexDisplays[(i+1)%len(vertexDisplays)]
		}
	}
	return vertexDisplays[0]
}

const helpText = "arrows/Q/E rotate  WASD/R/F move  +/- scale\n" +
	"P projection  T line type  V vertex markers\n" +
	"enter apply  backspace discard  L reload  esc quit"

type axisKey struct {
	key   ebiten.Key
	axis  meshview.Axis
	delta float64
}

var (
	rotateKeys = []axisKey{
		{ebiten.KeyArrowUp, meshview.AxisX, -1},
		{ebiten.KeyArrowDown, meshview.AxisX, 1},
		{ebiten.KeyArrowLeft, meshview.AxisY, -1},
		{ebiten.KeyArrowRight, meshview.AxisY, 1},
		{ebiten.KeyQ, meshview.AxisZ, 1},
		{ebiten.KeyE, meshview.AxisZ, -1},
	}
	translateKeys = []axisKey{
		{ebiten.KeyA, meshview.AxisX, -1},
		{ebiten.KeyD, meshview.AxisX, 1},
		{ebiten.KeyS, meshview.AxisY, -1},
		{ebiten.KeyW, meshview.AxisY, 1},
		{ebiten.KeyF, meshview.AxisZ, -1},
		{ebiten.KeyR, meshview.AxisZ, 1},
	}
)

// repeating is true on the first frame a key is down and then every few
// frames while it is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 15 && d%3 == 0)
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	rotStep := mgl64.DegToRad(v.cfg.Steps.Rotate)
	for _, k := range rotateKeys {
		if repeating(k.key) {
			v.pending[1][k.axis] += k.delta * rotStep
		}
	}
	for _, k := range translateKeys {
		if repeating(k.key) {
			v.pending[0][k.axis] += k.delta * v.cfg.Steps.Translate
		}
	}

	if repeating(ebiten.KeyEqual) || repeating(ebiten.KeyKPAdd) {
		v.pending[2][0] *= v.cfg.Steps.Scale
	}
	if repeating(ebiten.KeyMinus) || repeating(ebiten.KeyKPSubtract) {
		v.pending[2][0] /= v.cfg.Steps.Scale
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		v.applyPending()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		v.resetPending()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		v.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		v.camera.Parallel = !v.camera.Parallel
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		v.dashed = !v.dashed
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		v.vertexDisplay = nextVertexDisplay(v.vertexDisplay)
	}
	return nil
}
