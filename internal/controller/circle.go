package controller

import (
	"image/color"
	"log/slog"
	"math/rand/v2"

	"github.com/ThatOtherAndrew/Scanline/internal/coords"
	"github.com/ThatOtherAndrew/Scanline/internal/logging"
	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/palette"
	"github.com/ThatOtherAndrew/Scanline/internal/raster"
)

const (
	DefaultRadius  = 50
	MinRadius      = 2
	RadiusStep     = 2
	DefaultDotSize = 3
)

type CircleOptions struct {
	Center    models.PixelPoint
	Radius    int
	Color     color.RGBA
	PointSize float32
	Logger    *slog.Logger

	// Rand drives the random colour key. Nil uses a randomly seeded source.
	Rand *rand.Rand
}

// Circle is the single-circle demo: clicks move the center, arrow keys
// resize it.
type Circle struct {
	surface Surface
	rng     *rand.Rand
	log     *slog.Logger

	center    models.PixelPoint
	radius    int
	color     color.RGBA
	pointSize float32
}

func NewCircle(surface Surface, opts CircleOptions) *Circle {
	c := &Circle{
		surface:   surface,
		rng:       opts.Rand,
		log:       opts.Logger,
		center:    opts.Center,
		radius:    opts.Radius,
		color:     opts.Color,
		pointSize: opts.PointSize,
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.log == nil {
		c.log = logging.Logger()
	}
	if c.radius == 0 {
		c.radius = DefaultRadius
	}
	if c.radius < MinRadius {
		c.radius = MinRadius
	}
	if c.color == (color.RGBA{}) {
		c.color = palette.Color(models.DefaultPaletteIndex)
	}
	if c.pointSize == 0 {
		c.pointSize = DefaultDotSize
	}
	c.pointSize = models.ClampThickness(c.pointSize)
	return c
}

func (c *Circle) Center() models.PixelPoint { return c.center }

func (c *Circle) Radius() int { return c.radius }

func (c *Circle) Color() color.RGBA { return c.color }

func (c *Circle) OnPointerDown(x, y float64) {
	c.center = models.PixelPointFromFloat(x, y)
	c.log.Debug("circle center moved", "center", c.center)
	c.Render()
}

func (c *Circle) OnKeyDown(k models.Key) {
	switch k {
	case models.KeyUp:
		c.radius += RadiusStep
	case models.KeyDown:
		c.radius = max(c.radius-RadiusStep, MinRadius)
	case 'c':
		c.color = color.RGBA{
			R: uint8(c.rng.IntN(256)),
			G: uint8(c.rng.IntN(256)),
			B: uint8(c.rng.IntN(256)),
			A: 0xff,
		}
	default:
		if d, ok := k.Digit(); ok {
			c.color = palette.Color(d)
		}
	}
	c.log.Debug("circle updated", "radius", c.radius, "color", c.color)
	c.Render()
}

func (c *Circle) Render() {
	c.surface.ClearFrame()
	w, h := c.surface.Size()
	c.surface.SubmitPoints(
		coords.MapAll(raster.Circle(c.center, c.radius), models.Viewport{Width: w, Height: h}),
		c.color,
		c.pointSize,
	)
}
