// Package softraster renders point batches into an in-memory image so that
// drawings can be produced without a window.
package softraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/ThatOtherAndrew/Scanline/internal/coords"
	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"golang.org/x/image/draw"
)

// Canvas implements the controller surface on top of an *image.RGBA.
type Canvas struct {
	img        *image.RGBA
	background color.RGBA
}

func New(width, height int, background color.RGBA) *Canvas {
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	c.ClearFrame()
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) ClearFrame() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// SubmitPoints plots each point as a pointSize square centred on its pixel,
// the way GL draws unsmoothed points.
func (c *Canvas) SubmitPoints(points []models.NormalizedPoint, col color.RGBA, pointSize float32) {
	w, h := c.Size()
	vp := models.Viewport{Width: w, Height: h}
	src := image.NewUniform(col)
	for _, n := range points {
		draw.Draw(c.img, dot(coords.ToPixel(n, vp), pointSize), src, image.Point{}, draw.Src)
	}
}

// dot is the pixel square covered by a point of the given size. Sizes below
// one still cover a single pixel.
func dot(p models.PixelPoint, size float32) image.Rectangle {
	side := max(int(math.Round(float64(size))), 1)
	corner := image.Pt(p.X-side/2, p.Y-side/2)
	return image.Rectangle{Min: corner, Max: corner.Add(image.Pt(side, side))}
}

func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
