// Package viewconfig holds the preview window settings.
package viewconfig

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Projection modes.
const (
	ProjectionCentral  = "central"
	ProjectionParallel = "parallel"
)

// Line types.
const (
	LineSolid  = "solid"
	LineDashed = "dashed"
)

// Vertex marker shapes.
const (
	VertexNone   = "none"
	VertexCircle = "circle"
	VertexSquare = "square"
)

// Config is read from a YAML file. Fields missing from the file keep their
// Default() values.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Background string  `yaml:"background"`
	LineColor  string  `yaml:"line_color"`
	LineWidth  float64 `yaml:"line_width"`
	LineType   string  `yaml:"line_type"`

	Vertices struct {
		Display string  `yaml:"display"`
		Color   string  `yaml:"color"`
		Size    float64 `yaml:"size"`
	} `yaml:"vertices"`

	FitOnLoad bool `yaml:"fit_on_load"`

	Projection string `yaml:"projection"`

	Camera struct {
		Distance   float64 `yaml:"distance"`
		FovY       float64 `yaml:"fov_y_degrees"`
		HalfHeight float64 `yaml:"ortho_half_height"`
	} `yaml:"camera"`

	Steps struct {
		Translate float64 `yaml:"translate"`
		Rotate    float64 `yaml:"rotate_degrees"`
		Scale     float64 `yaml:"scale"`
	} `yaml:"steps"`
}

func Default() Config {
	var c Config
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.Title = "meshview"
	c.Background = "#101018"
	c.LineColor = "#e0e0e0"
	c.LineWidth = 1
	c.LineType = LineSolid
	c.Vertices.Display = VertexNone
	c.Vertices.Color = "#ffffff"
	c.Vertices.Size = 3
	c.FitOnLoad = true
	c.Projection = ProjectionCentral
	c.Camera.Distance = 5
	c.Camera.FovY = 45
	c.Camera.HalfHeight = 2
	c.Steps.Translate = 0.1
	c.Steps.Rotate = 5
	c.Steps.Scale = 1.1
	return c
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseColor(c.LineColor); err != nil {
		errs = append(errs, fmt.Errorf("line_color: %w", err))
	}
	if c.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line width %v must be positive", c.LineWidth))
	}
	if c.LineType != LineSolid && c.LineType != LineDashed {
		errs = append(errs, fmt.Errorf("line type %q must be %q or %q", c.LineType, LineSolid, LineDashed))
	}
	switch c.Vertices.Display {
	case VertexNone, VertexCircle, VertexSquare:
	default:
		errs = append(errs, fmt.Errorf("vertex display %q must be %q, %q or %q",
			c.Vertices.Display, VertexNone, VertexCircle, VertexSquare))
	}
	if _, err := ParseColor(c.Vertices.Color); err != nil {
		errs = append(errs, fmt.Errorf("vertices.color: %w", err))
	}
	if c.Vertices.Size <= 0 {
		errs = append(errs, fmt.Errorf("vertex size %v must be positive", c.Vertices.Size))
	}
	if c.Projection != ProjectionCentral && c.Projection != ProjectionParallel {
		errs = append(errs, fmt.Errorf("projection %q must be %q or %q", c.Projection, ProjectionCentral, ProjectionParallel))
	}
	if c.Camera.HalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("camera ortho half height %v must be positive", c.Camera.HalfHeight))
	}
	if c.Camera.Distance <= 0 {
		errs = append(errs, fmt.Errorf("camera distance %v must be positive", c.Camera.Distance))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v must be in (0, 180)", c.Camera.FovY))
	}
	if c.Steps.Scale <= 1 {
		errs = append(errs, fmt.Errorf("scale step %v must be greater than 1", c.Steps.Scale))
	}
	return errors.Join(errs...)
}

func (c Config) BackgroundColor() color.RGBA {
	clr, _ := ParseColor(c.Background)
	return clr
}

func (c Config) LineRGBA() color.RGBA {
	clr, _ := ParseColor(c.LineColor)
	return clr
}

func (c Config) VertexRGBA() color.RGBA {
	clr, _ := ParseColor(c.Vertices.Color)
	return clr
}

var ErrBadColor = errors.New("color must look like #rrggbb or #rrggbbaa")

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
