package palette

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Colors is indexed by the digit keys 0-9.
var Colors = [...]color.RGBA{
	colornames.Red,
	colornames.Lime,
	colornames.Blue,
	colornames.Yellow,
	colornames.Magenta,
	colornames.Cyan,
	colornames.Gray,
	{0xff, 0x80, 0x00, 0xff}, // orange, redder than the SVG one
	colornames.Purple,
	colornames.Black,
}

var Names = [...]string{
	"red", "lime", "blue", "yellow", "magenta",
	"cyan", "gray", "orange", "purple", "black",
}

func Len() int { return len(Colors) }

func Valid(i int) bool { return i >= 0 && i < len(Colors) }

// Color returns the palette entry at i, falling back to blue.
func Color(i int) color.RGBA {
	if !Valid(i) {
		return colornames.Blue
	}
	return Colors[i]
}

// Lookup resolves a palette name or any SVG colour name.
func Lookup(name string) (color.RGBA, bool) {
	for i, n := range Names {
		if n == name {
			return Colors[i], true
		}
	}
	c, ok := colornames.Map[name]
	return c, ok
}
