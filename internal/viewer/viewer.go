// Package viewer is an ebiten window that draws a mesh as a wireframe and
// drives the meshview transforms from the keyboard.
package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/smasonuk/meshview"
	"github.com/smasonuk/meshview/internal/viewconfig"
	"github.com/smasonuk/meshview/internal/wireframe"
)

type Viewer struct {
	cfg    viewconfig.Config
	path   string
	mesh   *meshview.Mesh
	camera wireframe.Camera

	// pending is previewed through its matrix until it is applied to the mesh.
	pending meshview.AffineParams

	dashed        bool
	vertexDisplay string

	background color.RGBA
	line       color.RGBA
	vertex     color.RGBA
	width      int
	height     int
}

func New(cfg viewconfig.Config, path string) *Viewer {
	v := &Viewer{
		cfg:        cfg,
		path:       path,
		mesh:       meshview.NewMesh(),
		camera:        wireframe.DefaultCamera(cfg.Camera.Distance),
		dashed:        cfg.LineType == viewconfig.LineDashed,
		vertexDisplay: cfg.Vertices.Display,
		background:    cfg.BackgroundColor(),
		line:          cfg.LineRGBA(),
		vertex:        cfg.VertexRGBA(),
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
	}
	v.camera.FovY = mgl64.DegToRad(cfg.Camera.FovY)
	v.camera.HalfHeight = cfg.Camera.HalfHeight
	v.camera.Parallel = cfg.Projection == viewconfig.ProjectionParallel
	v.resetPending()
	v.reload()
	return v
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.cfg.Window.Width, v.cfg.Window.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", v.cfg.Window.Title, v.path))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (v *Viewer) reload() {
	v.mesh.Release()
	v.mesh.LoadFile(v.path)

	if err := v.mesh.Validate(); err != nil {
		log.Printf("%s has topology problems: %v", v.path, err)
	}
	if v.cfg.FitOnLoad {
		if err := v.mesh.FitToViewport(); err != nil {
			log.Printf("not fitting %s to the viewport: %v", v.path, err)
		}
	}
	v.resetPending()
}

func (v *Viewer) resetPending() {
	v.pending = meshview.NewAffineParams(mgl64.Vec3{}, mgl64.Vec3{}, 1)
}

// applyPending bakes the previewed transform into the mesh.
func (v *Viewer) applyPending() {
	log.Printf("Applying translate %v rotate %v scale %.3f",
		v.pending.Translation(), v.pending.Rotation(), v.pending.ScaleFactor())
	v.mesh.ApplyAffine(v.pending)
	v.resetPending()
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.background)

	model := v.pending.Matrix()
	segments := v.camera.Project(v.mesh, model, v.width, v.height)
	for _, s := range segments {
		if v.dashed {
			drawDashedLine(screen, s, float32(v.cfg.LineWidth), v.line)
		} else {
			drawLine(screen, s, float32(v.cfg.LineWidth), v.line)
		}
	}

	if v.vertexDisplay != viewconfig.VertexNone {
		for _, p := range v.camera.ProjectVertices(v.mesh, model, v.width, v.height) {
			drawVertex(screen, p, v.vertexDisplay, float32(v.cfg.Vertices.Size), v.vertex)
		}
	}

	projection := viewconfig.ProjectionCentral
	if v.camera.Parallel {
		projection = viewconfig.ProjectionParallel
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"vertices: %d  faces: %d  edges drawn: %d  projection: %s\n%s",
		v.mesh.VertexCount(), v.mesh.FaceCount(), len(segments), projection, helpText))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
