// Package export renders a single shape without a window by replaying it
// through the controllers onto a software canvas.
package export

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ThatOtherAndrew/Scanline/internal/controller"
	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/palette"
	"github.com/ThatOtherAndrew/Scanline/internal/softraster"
)

type Kind string

const (
	KindLine     Kind = "line"
	KindTriangle Kind = "triangle"
	KindCircle   Kind = "circle"
)

const (
	// MaxCanvasSide matches the largest window the settings allow.
	MaxCanvasSide = 8192
	// MaxCoordinate bounds every coordinate and radius. Shapes may extend
	// past the canvas, but not without limit.
	MaxCoordinate = 4 * MaxCanvasSide
)

type Request struct {
	Kind         Kind
	Points       []models.PixelPoint
	Radius       int
	Width        int
	Height       int
	Background   color.RGBA
	PaletteIndex int
	PointSize    float32
}

// ParseShape reads "line x0 y0 x1 y1", "triangle x0 y0 x1 y1 x2 y2" or
// "circle cx cy r".
func ParseShape(args []string) (Kind, []models.PixelPoint, int, error) {
	if len(args) == 0 {
		return "", nil, 0, fmt.Errorf("missing shape: want line, triangle or circle")
	}
	kind := Kind(args[0])

	var want int
	switch kind {
	case KindLine:
		want = 4
	case KindTriangle:
		want = 6
	case KindCircle:
		want = 3
	default:
		return "", nil, 0, fmt.Errorf("unknown shape %q: want line, triangle or circle", args[0])
	}

	nums := args[1:]
	if len(nums) != want {
		return "", nil, 0, fmt.Errorf("%s takes %d numbers, got %d", kind, want, len(nums))
	}
	values := make([]int, len(nums))
	for i, s := range nums {
		v, err := strconv.Atoi(s)
		if err != nil {
			return "", nil, 0, fmt.Errorf("argument %d of %s: %w", i+1, kind, err)
		}
		if v < -MaxCoordinate || v > MaxCoordinate {
			return "", nil, 0, fmt.Errorf("argument %d of %s: %d outside ±%d", i+1, kind, v, MaxCoordinate)
		}
		values[i] = v
	}

	if kind == KindCircle {
		return kind, []models.PixelPoint{{X: values[0], Y: values[1]}}, values[2], nil
	}
	points := make([]models.PixelPoint, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		points = append(points, models.PixelPoint{X: values[i], Y: values[i+1]})
	}
	return kind, points, 0, nil
}

// ParsePaletteIndex accepts a digit or a palette colour name.
func ParsePaletteIndex(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if !palette.Valid(i) {
			return 0, fmt.Errorf("palette index %d out of range 0-%d", i, palette.Len()-1)
		}
		return i, nil
	}
	for i, name := range palette.Names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown palette colour %q", s)
}

func Render(req Request) (*softraster.Canvas, error) {
	if req.Width <= 0 || req.Height <= 0 || req.Width > MaxCanvasSide || req.Height > MaxCanvasSide {
		return nil, fmt.Errorf("invalid canvas size %dx%d: each side must be 1-%d", req.Width, req.Height, MaxCanvasSide)
	}
	for _, p := range req.Points {
		if !inRange(p.X) || !inRange(p.Y) {
			return nil, fmt.Errorf("point %v outside ±%d", p, MaxCoordinate)
		}
	}
	if !inRange(req.Radius) {
		return nil, fmt.Errorf("radius %d outside ±%d", req.Radius, MaxCoordinate)
	}
	canvas := softraster.New(req.Width, req.Height, req.Background)

	switch req.Kind {
	case KindLine, KindTriangle:
		ctl := controller.New(canvas, controller.Options{
			Style: &models.Style{PaletteIndex: req.PaletteIndex, Thickness: req.PointSize},
		})
		if req.Kind == KindTriangle {
			ctl.OnKeyDown('t')
		}
		if want := ctl.Mode().RequiredVertices(); len(req.Points) != want {
			return nil, fmt.Errorf("%s needs %d points, got %d", req.Kind, want, len(req.Points))
		}
		for _, p := range req.Points {
			ctl.OnPointerDown(float64(p.X), float64(p.Y))
		}
	case KindCircle:
		if len(req.Points) != 1 {
			return nil, fmt.Errorf("circle needs a center, got %d points", len(req.Points))
		}
		if req.Radius < controller.MinRadius {
			return nil, fmt.Errorf("circle radius %d below minimum %d", req.Radius, controller.MinRadius)
		}
		c := controller.NewCircle(canvas, controller.CircleOptions{
			Center:    req.Points[0],
			Radius:    req.Radius,
			Color:     palette.Color(req.PaletteIndex),
			PointSize: req.PointSize,
		})
		c.Render()
	default:
		return nil, fmt.Errorf("unknown shape %q", req.Kind)
	}
	return canvas, nil
}

func inRange(v int) bool {
	return v >= -MaxCoordinate && v <= MaxCoordinate
}
