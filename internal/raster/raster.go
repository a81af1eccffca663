// Package raster scan-converts lines and circles into pixel lists using
// integer-only Bresenham error terms.
package raster

import "github.com/ThatOtherAndrew/Scanline/internal/models"

// Line returns the pixels from p0 to p1 inclusive. Consecutive points are
// 8-connected and a degenerate segment yields a single point.
func Line(p0, p1 models.PixelPoint) []models.PixelPoint {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx := 1
	if p1.X < p0.X {
		sx = -1
	}
	sy := 1
	if p1.Y < p0.Y {
		sy = -1
	}
	err := dx - dy
	x, y := p0.X, p0.Y

	points := make([]models.PixelPoint, 0, max(dx, dy)+1)
	for {
		points = append(points, models.PixelPoint{X: x, Y: y})
		if x == p1.X && y == p1.Y {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Triangle returns the outline p0→p1→p2→p0 as three concatenated lines.
// Shared vertices appear twice.
func Triangle(p0, p1, p2 models.PixelPoint) []models.PixelPoint {
	points := Line(p0, p1)
	points = append(points, Line(p1, p2)...)
	return append(points, Line(p2, p0)...)
}

// Circle returns the outline of a circle using the midpoint decision term
// and 8-way symmetry. Points on the axes and diagonals may repeat. A radius
// below 1 yields just the center.
func Circle(center models.PixelPoint, radius int) []models.PixelPoint {
	if radius < 1 {
		return []models.PixelPoint{center}
	}

	x, y := 0, radius
	d := 3 - 2*radius
	points := make([]models.PixelPoint, 0, 8*(radius+1))
	for x <= y {
		points = appendOctants(points, center, x, y)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return points
}

func appendOctants(points []models.PixelPoint, c models.PixelPoint, x, y int) []models.PixelPoint {
	return append(points,
		models.PixelPoint{X: c.X + x, Y: c.Y + y},
		models.PixelPoint{X: c.X - x, Y: c.Y + y},
		models.PixelPoint{X: c.X + x, Y: c.Y - y},
		models.PixelPoint{X: c.X - x, Y: c.Y - y},
		models.PixelPoint{X: c.X + y, Y: c.Y + x},
		models.PixelPoint{X: c.X - y, Y: c.Y + x},
		models.PixelPoint{X: c.X + y, Y: c.Y - x},
		models.PixelPoint{X: c.X - y, Y: c.Y - x},
	)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
