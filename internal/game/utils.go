package game

import (
	"fmt"
	"image/color"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// follow moves cur toward target by factor of the remaining distance.
func follow(cur, target, factor float64) float64 {
	return cur + (target-cur)*factor
}

// withAlpha returns c at the given opacity (0-1) as a non-premultiplied color.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// copyright formats the footer line for the given time.
func copyright(now time.Time) string {
	return fmt.Sprintf("© %d All rights reserved", now.Year())
}

type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r rect) offset(dx, dy float64) rect {
	return rect{r.X + dx, r.Y + dy, r.W, r.H}
}

// scale shrinks or grows r around its center.
func (r rect) scale(s float64) rect {
	w, h := r.W*s, r.H*s
	return rect{r.X + (r.W-w)/2, r.Y + (r.H-h)/2, w, h}
}
