package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

const (
	cursorDotRadius  = 4
	cursorRingRadius = 16
	ringHoverScale   = 1.5
	ringClickScale   = 0.8
)

var (
	cursorDotColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cursorRingColor = color.RGBA{R: 139, G: 92, B: 246, A: 255}
)

// Cursor is a dot that tracks the pointer closely and a ring that lags behind.
type Cursor struct {
	DotX, DotY   float64
	RingX, RingY float64
	Hovering     bool
	Clicking     bool
	Visible      bool
}

// Update eases toward the pointer. inside is false while the pointer is
// outside the window, which hides the cursor.
func (c *Cursor) Update(mx, my float64, inside, hovering, pressed bool) {
	c.Visible = inside
	c.Hovering = hovering
	c.Clicking = pressed
	if !inside {
		return
	}
	c.DotX = follow(c.DotX, mx, config.CursorDotFollow)
	c.DotY = follow(c.DotY, my, config.CursorDotFollow)
	c.RingX = follow(c.RingX, mx, config.CursorRingFollow)
	c.RingY = follow(c.RingY, my, config.CursorRingFollow)
}

// RingRadius reflects the hover and click states.
func (c *Cursor) RingRadius() float64 {
	r := float64(cursorRingRadius)
	if c.Hovering {
		r *= ringHoverScale
	}
	if c.Clicking {
		r *= ringClickScale
	}
	return r
}

func (c *Cursor) Draw(screen *ebiten.Image) {
	if !c.Visible {
		return
	}
	ringAlpha := 0.5
	if c.Hovering {
		vector.DrawFilledCircle(screen, float32(c.RingX), float32(c.RingY), float32(c.RingRadius()), withAlpha(cursorRingColor, 0.12), true)
		ringAlpha = 0.9
	}
	vector.StrokeCircle(screen, float32(c.RingX), float32(c.RingY), float32(c.RingRadius()), 1.5, withAlpha(cursorRingColor, ringAlpha), true)
	vector.DrawFilledCircle(screen, float32(c.DotX), float32(c.DotY), cursorDotRadius, cursorDotColor, true)
}
