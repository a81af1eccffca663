package shape

import (
	"slices"

	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/raster"
)

// Memory holds the last completed shape so it can be redrawn with a new
// style without new input.
type Memory struct {
	current models.Shape
	has     bool
}

func New() *Memory {
	return &Memory{}
}

// Store replaces the held shape. The vertex slice is copied.
func (m *Memory) Store(s models.Shape) {
	m.current = models.Shape{Kind: s.Kind, Vertices: slices.Clone(s.Vertices)}
	m.has = true
}

func (m *Memory) Current() (models.Shape, bool) {
	if !m.has {
		return models.Shape{}, false
	}
	return models.Shape{Kind: m.current.Kind, Vertices: slices.Clone(m.current.Vertices)}, true
}

func (m *Memory) Clear() {
	m.current = models.Shape{}
	m.has = false
}

// Render rasterizes the held shape. It returns nil when nothing is stored
// or the shape has too few vertices for its kind.
func (m *Memory) Render() []models.PixelPoint {
	if !m.has {
		return nil
	}
	v := m.current.Vertices
	if len(v) < m.current.Kind.VertexCount() {
		return nil
	}
	switch m.current.Kind {
	case models.ShapeLine:
		return raster.Line(v[0], v[1])
	case models.ShapeTriangle:
		return raster.Triangle(v[0], v[1], v[2])
	}
	return nil
}
