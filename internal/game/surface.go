package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageSurface paints particles onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear() { s.img.Clear() }

func (s imageSurface) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), withAlpha(c, alpha), true)
}

func (s imageSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha float64) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), withAlpha(c, alpha), true)
}
