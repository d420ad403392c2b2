package viewer

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/meshview/internal/viewconfig"
	"github.com/smasonuk/meshview/internal/wireframe"
)

func drawLine(screen *ebiten.Image, s wireframe.Segment, width float32, clr color.Color) {
	vector.StrokeLine(screen,
		float32(s.From[0]), float32(s.From[1]),
		float32(s.To[0]), float32(s.To[1]),
		width, clr, true)
}

func drawDashedLine(screen *ebiten.Image, s wireframe.Segment, width float32, clr color.Color) {
	for _, d := range wireframe.Dashes(s, wireframe.DashLength, wireframe.GapLength) {
		drawLine(screen, d, width, clr)
	}
}

// drawVertex marks p with a filled shape size pixels across.
func drawVertex(screen *ebiten.Image, p mgl64.Vec2, display string, size float32, clr color.Color) {
	x, y := float32(p[0]), float32(p[1])
	switch display {
	case viewconfig.VertexCircle:
		vector.DrawFilledCircle(screen, x, y, size/2, clr, true)
	case viewconfig.VertexSquare:
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, clr, true)
	}
}
