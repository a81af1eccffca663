package controller

import (
	"image/color"
	"log/slog"
	"slices"

	"github.com/ThatOtherAndrew/Scanline/internal/coords"
	"github.com/ThatOtherAndrew/Scanline/internal/logging"
	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/palette"
	"github.com/ThatOtherAndrew/Scanline/internal/shape"
)

// Surface is where rendered points end up. Size is read on every render,
// so a resized window is picked up immediately.
type Surface interface {
	Size() (int, int)
	ClearFrame()
	SubmitPoints(points []models.NormalizedPoint, c color.RGBA, pointSize float32)
}

type Options struct {
	// Style is the initial style. Nil means blue at the default thickness.
	Style  *models.Style
	Logger *slog.Logger

	// SeedOrigin stores and draws a zero-length line at (0,0) on startup.
	SeedOrigin bool
}

// Controller turns clicks and key presses into lines and triangles.
type Controller struct {
	surface Surface
	memory  *shape.Memory
	log     *slog.Logger

	mode    models.DrawMode
	pending []models.PixelPoint
	style   models.Style
}

func New(surface Surface, opts Options) *Controller {
	style := models.DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
		if !palette.Valid(style.PaletteIndex) {
			style.PaletteIndex = models.DefaultPaletteIndex
		}
		style.Thickness = models.ClampThickness(style.Thickness)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Logger()
	}

	c := &Controller{
		surface: surface,
		memory:  shape.New(),
		log:     logger,
		mode:    models.ModeLine,
		style:   style,
	}

	if opts.SeedOrigin {
		c.memory.Store(models.Shape{
			Kind:     models.ShapeLine,
			Vertices: []models.PixelPoint{{}, {}},
		})
		c.Render()
	}
	return c
}

func (c *Controller) Mode() models.DrawMode { return c.mode }

func (c *Controller) Style() models.Style { return c.style }

func (c *Controller) Pending() []models.PixelPoint { return slices.Clone(c.pending) }

func (c *Controller) Current() (models.Shape, bool) { return c.memory.Current() }

// SetMode switches mode and drops any partially entered shape.
func (c *Controller) SetMode(m models.DrawMode) {
	if len(c.pending) > 0 {
		c.log.Debug("discarding pending vertices", "count", len(c.pending))
	}
	c.mode = m
	c.pending = c.pending[:0]
	c.log.Debug("mode changed", "mode", m)
}

func (c *Controller) OnPointerDown(x, y float64) {
	kind, ok := c.mode.ShapeKind()
	if !ok {
		return
	}

	c.pending = append(c.pending, models.PixelPointFromFloat(x, y))
	if len(c.pending) < kind.VertexCount() {
		return
	}

	c.memory.Store(models.Shape{Kind: kind, Vertices: c.pending})
	c.log.Debug("shape completed", "kind", kind, "vertices", c.pending)
	c.pending = c.pending[:0]
	c.Render()
}

func (c *Controller) OnKeyDown(k models.Key) {
	switch k {
	case 'l':
		c.SetMode(models.ModeLine)
		return
	case 't':
		c.SetMode(models.ModeTriangle)
		return
	case 'c':
		c.SetMode(models.ModeSelectColor)
		return
	case 's':
		c.SetMode(models.ModeSelectThickness)
		return
	}

	switch c.mode {
	case models.ModeSelectColor:
		if d, ok := k.Digit(); ok {
			c.SetPalette(d)
		}
	case models.ModeSelectThickness:
		if d, ok := k.Digit(); ok {
			c.SetThickness(float32(d * 5))
			return
		}
		switch k {
		case '+', '=':
			c.SetThickness(c.style.Thickness + 1)
		case '-':
			c.SetThickness(c.style.Thickness - 1)
		}
	}
}

// SetPalette selects a palette entry. Indices outside the palette are
// ignored and reported as false.
func (c *Controller) SetPalette(i int) bool {
	if !palette.Valid(i) {
		return false
	}
	c.style.PaletteIndex = i
	c.log.Debug("palette changed", "index", i, "name", palette.Names[i])
	c.Render()
	return true
}

func (c *Controller) SetThickness(v float32) {
	c.style.Thickness = models.ClampThickness(v)
	c.log.Debug("thickness changed", "thickness", c.style.Thickness)
	c.Render()
}

// Render clears the surface and redraws the stored shape, if any, with the
// current style.
func (c *Controller) Render() {
	c.surface.ClearFrame()
	points := c.memory.Render()
	if len(points) == 0 {
		return
	}
	w, h := c.surface.Size()
	c.surface.SubmitPoints(
		coords.MapAll(points, models.Viewport{Width: w, Height: h}),
		palette.Color(c.style.PaletteIndex),
		c.style.Thickness,
	)
}
