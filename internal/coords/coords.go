// Package coords maps between viewport pixels and normalized device
// coordinates.
package coords

import "github.com/ThatOtherAndrew/Scanline/internal/models"

// ToNormalized maps p into NDC for the given viewport. Points outside the
// viewport land outside [-1, 1].
func ToNormalized(p models.PixelPoint, vp models.Viewport) models.NormalizedPoint {
	w, h := dims(vp)
	return models.NormalizedPoint{
		X: float32(2*float64(p.X)/w - 1),
		Y: float32(1 - 2*float64(p.Y)/h),
	}
}

// ToPixel is the inverse of ToNormalized, rounded to the nearest pixel.
func ToPixel(n models.NormalizedPoint, vp models.Viewport) models.PixelPoint {
	w, h := dims(vp)
	return models.PixelPointFromFloat(
		(float64(n.X)+1)*w/2,
		(1-float64(n.Y))*h/2,
	)
}

// MapAll converts every point with the same viewport.
func MapAll(points []models.PixelPoint, vp models.Viewport) []models.NormalizedPoint {
	out := make([]models.NormalizedPoint, len(points))
	for i, p := range points {
		out[i] = ToNormalized(p, vp)
	}
	return out
}

func dims(vp models.Viewport) (float64, float64) {
	w, h := vp.Width, vp.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return float64(w), float64(h)
}
