package export

import (
	"image/color"
	"math"
	"slices"
	"strconv"
	"testing"

	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/palette"
	"github.com/ThatOtherAndrew/Scanline/internal/raster"
)

var white = color.RGBA{255, 255, 255, 255}

func TestParseShape(t *testing.T) {
	tests := []struct {
		args   []string
		kind   Kind
		points []models.PixelPoint
		radius int
	}{
		{[]string{"line", "1", "2", "3", "4"}, KindLine, []models.PixelPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}, 0},
		{[]string{"triangle", "0", "0", "5", "0", "0", "5"}, KindTriangle, []models.PixelPoint{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}}, 0},
		{[]string{"circle", "10", "-3", "7"}, KindCircle, []models.PixelPoint{{X: 10, Y: -3}}, 7},
	}
	for _, tt := range tests {
		kind, points, radius, err := ParseShape(tt.args)
		if err != nil {
			t.Errorf("ParseShape(%v) error = %v", tt.args, err)
			continue
		}
		if kind != tt.kind || !slices.Equal(points, tt.points) || radius != tt.radius {
			t.Errorf("ParseShape(%v) = %v, %v, %d, want %v, %v, %d", tt.args, kind, points, radius, tt.kind, tt.points, tt.radius)
		}
	}
}

func TestParseShapeErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"square", "1", "2"},
		{"line", "1", "2", "3"},
		{"circle", "1", "2", "x"},
		{"triangle", "0", "0", "1", "1", "2", "2", "3"},
		{"line", "0", "0", "3000000000", "0"},
		{"line", "0", "0", "9223372036854775807", "0"},
		{"triangle", "0", "0", "5", "-32769", "0", "5"},
		{"circle", "0", "0", "9223372036854775807"},
	} {
		if _, _, _, err := ParseShape(args); err == nil {
			t.Errorf("ParseShape(%v) succeeded, want error", args)
		}
	}
}

func TestParsePaletteIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"9", 9, false},
		{"blue", 2, false},
		{"orange", 7, false},
		{"10", 0, true},
		{"-1", 0, true},
		{"chartreuse", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePaletteIndex(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePaletteIndex(%q) = %d, %v, want %d, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestRenderTriangle(t *testing.T) {
	a, b, c := models.PixelPoint{X: 2, Y: 2}, models.PixelPoint{X: 28, Y: 4}, models.PixelPoint{X: 10, Y: 25}
	canvas, err := Render(Request{
		Kind:         KindTriangle,
		Points:       []models.PixelPoint{a, b, c},
		Width:        32,
		Height:       32,
		Background:   white,
		PaletteIndex: 1,
		PointSize:    1,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := canvas.Image()
	for _, p := range raster.Triangle(a, b, c) {
		if got := img.RGBAAt(p.X, p.Y); got != palette.Color(1) {
			t.Errorf("pixel %v = %v, want %v", p, got, palette.Color(1))
		}
	}
	if got := img.RGBAAt(31, 31); got != white {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestRenderCircle(t *testing.T) {
	center := models.PixelPoint{X: 16, Y: 16}
	canvas, err := Render(Request{
		Kind:         KindCircle,
		Points:       []models.PixelPoint{center},
		Radius:       10,
		Width:        32,
		Height:       32,
		Background:   white,
		PaletteIndex: 0,
		PointSize:    1,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := canvas.Image()
	for _, p := range raster.Circle(center, 10) {
		if got := img.RGBAAt(p.X, p.Y); got != palette.Color(0) {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
	if got := img.RGBAAt(16, 16); got != white {
		t.Errorf("center pixel = %v, want background", got)
	}
}

func TestRenderErrors(t *testing.T) {
	for _, req := range []Request{
		{Kind: KindLine, Points: []models.PixelPoint{{}, {}}, Width: 0, Height: 10},
		{Kind: KindLine, Points: []models.PixelPoint{{}}, Width: 10, Height: 10},
		{Kind: KindTriangle, Points: []models.PixelPoint{{}, {}}, Width: 10, Height: 10},
		{Kind: KindCircle, Points: []models.PixelPoint{{}}, Radius: 1, Width: 10, Height: 10},
		{Kind: "hexagon", Width: 10, Height: 10},
		{Kind: KindLine, Points: []models.PixelPoint{{}, {}}, Width: MaxCanvasSide + 1, Height: 10},
		{Kind: KindLine, Points: []models.PixelPoint{{}, {X: math.MaxInt}}, Width: 10, Height: 10},
		{Kind: KindTriangle, Points: []models.PixelPoint{{}, {X: 1}, {Y: math.MinInt}}, Width: 10, Height: 10},
		{Kind: KindCircle, Points: []models.PixelPoint{{}}, Radius: math.MaxInt, Width: 10, Height: 10},
		{Kind: KindCircle, Points: []models.PixelPoint{{}}, Radius: MaxCoordinate + 1, Width: 10, Height: 10},
	} {
		if _, err := Render(req); err == nil {
			t.Errorf("Render(%+v) succeeded, want error", req)
		}
	}
}

func TestParseShapeLimits(t *testing.T) {
	limit := strconv.Itoa(MaxCoordinate)
	if _, points, _, err := ParseShape([]string{"line", "-" + limit, "0", limit, "0"}); err != nil {
		t.Errorf("ParseShape at the coordinate limit error = %v", err)
	} else if points[0].X != -MaxCoordinate || points[1].X != MaxCoordinate {
		t.Errorf("ParseShape at the limit = %v", points)
	}
	if _, _, r, err := ParseShape([]string{"circle", "0", "0", limit}); err != nil || r != MaxCoordinate {
		t.Errorf("ParseShape(circle radius %s) = %d, %v", limit, r, err)
	}
}

func TestRenderClipsShapeBeyondCanvas(t *testing.T) {
	canvas, err := Render(Request{
		Kind:         KindLine,
		Points:       []models.PixelPoint{{X: 0, Y: 5}, {X: MaxCoordinate, Y: 5}},
		Width:        16,
		Height:       16,
		Background:   white,
		PaletteIndex: 0,
		PointSize:    1,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := canvas.Image().RGBAAt(15, 5); got != palette.Color(0) {
		t.Errorf("edge pixel = %v, want %v", got, palette.Color(0))
	}
}
