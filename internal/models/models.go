package models

import (
	"math"
)

// PixelPoint is a position in viewport pixels, origin top-left, y down.
type PixelPoint struct {
	X, Y int
}

// PixelPointFromFloat rounds a cursor position to the nearest pixel.
func PixelPointFromFloat(x, y float64) PixelPoint {
	return PixelPoint{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// NormalizedPoint is a position in normalized device coordinates, origin
// center, y up.
type NormalizedPoint struct {
	X, Y float32
}

type Viewport struct {
	Width, Height int
}

type ShapeKind int

const (
	ShapeLine ShapeKind = iota
	ShapeTriangle
)

func (k ShapeKind) VertexCount() int {
	switch k {
	case ShapeLine:
		return 2
	case ShapeTriangle:
		return 3
	}
	return 0
}

func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeTriangle:
		return "triangle"
	}
	return "unknown"
}

type Shape struct {
	Kind     ShapeKind
	Vertices []PixelPoint
}

type DrawMode int

const (
	ModeLine DrawMode = iota
	ModeTriangle
	ModeSelectColor
	ModeSelectThickness
)

func (m DrawMode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeTriangle:
		return "triangle"
	case ModeSelectColor:
		return "select-color"
	case ModeSelectThickness:
		return "select-thickness"
	}
	return "unknown"
}

// RequiredVertices is the number of clicks that complete a shape in this
// mode, or 0 for modes that do not produce geometry.
func (m DrawMode) RequiredVertices() int {
	switch m {
	case ModeLine:
		return ShapeLine.VertexCount()
	case ModeTriangle:
		return ShapeTriangle.VertexCount()
	}
	return 0
}

// ShapeKind reports the shape produced by a geometry mode.
func (m DrawMode) ShapeKind() (ShapeKind, bool) {
	switch m {
	case ModeLine:
		return ShapeLine, true
	case ModeTriangle:
		return ShapeTriangle, true
	}
	return 0, false
}

const (
	DefaultPaletteIndex = 2
	DefaultThickness    = 5
	MinThickness        = 1
	MaxThickness        = 100
)

type Style struct {
	PaletteIndex int
	Thickness    float32
}

func DefaultStyle() Style {
	return Style{PaletteIndex: DefaultPaletteIndex, Thickness: DefaultThickness}
}

func ClampThickness(v float32) float32 {
	if v < MinThickness {
		return MinThickness
	}
	if v > MaxThickness {
		return MaxThickness
	}
	return v
}

// Key is a printable character or one of the X keysyms below.
type Key rune

const (
	KeyEscape Key = 0xff1b
	KeyLeft   Key = 0xff51
	KeyUp     Key = 0xff52
	KeyRight  Key = 0xff53
	KeyDown   Key = 0xff54
)

// Digit returns the value of a '0'..'9' key.
func (k Key) Digit() (int, bool) {
	if k >= '0' && k <= '9' {
		return int(k - '0'), true
	}
	return 0, false
}

type GLState struct {
	Vao     uint32
	Vbo     uint32
	Program uint32
}
