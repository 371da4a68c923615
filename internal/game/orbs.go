package game

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

const (
	orbDriftSpeed  = 0.004 // noise units per frame
	orbDriftRadius = 24.0
	orbGlowLayers  = 6
)

type orb struct {
	fx, fy float64 // center as a fraction of the viewport
	radius float64
	color  color.RGBA
}

var defaultOrbs = []orb{
	{fx: 0.15, fy: 0.2, radius: 220, color: color.RGBA{R: 139, G: 92, B: 246, A: 255}},
	{fx: 0.85, fy: 0.35, radius: 180, color: color.RGBA{R: 59, G: 130, B: 246, A: 255}},
	{fx: 0.5, fy: 0.9, radius: 260, color: color.RGBA{R: 236, G: 72, B: 153, A: 255}},
}

// Orbs are large blurred blobs that shift against pointer movement. Deeper
// orbs (higher index) move further.
type Orbs struct {
	orbs       []orb
	targetX    float64 // pointer, normalized to [-1, 1]
	targetY    float64
	CurX, CurY float64
	noise      *perlin.Perlin
	frame      float64
}

func NewOrbs(seed int64) *Orbs {
	return &Orbs{
		orbs:  defaultOrbs,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Point records a pointer position in a w x h viewport.
func (o *Orbs) Point(mx, my, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	o.targetX = (mx/w - 0.5) * 2
	o.targetY = (my/h - 0.5) * 2
}

// Update eases the shared offset toward the pointer, once per frame.
func (o *Orbs) Update() {
	o.CurX = follow(o.CurX, o.targetX, config.OrbFollow)
	o.CurY = follow(o.CurY, o.targetY, config.OrbFollow)
	o.frame++
}

// Offset is the parallax translation of orb i.
func (o *Orbs) Offset(i int) (float64, float64) {
	speed := float64((i + 1) * config.OrbSpeedStep)
	return o.CurX * speed, o.CurY * speed
}

// Drift is a slow idle wander independent of the pointer, within orbDriftRadius.
func (o *Orbs) Drift(i int) (float64, float64) {
	t := o.frame * orbDriftSpeed
	base := float64(i) * 17.3
	nx := math.Max(-1, math.Min(1, o.noise.Noise1D(t+base)))
	ny := math.Max(-1, math.Min(1, o.noise.Noise1D(t+base+101)))
	return nx * orbDriftRadius, ny * orbDriftRadius
}

func (o *Orbs) Len() int { return len(o.orbs) }

func (o *Orbs) Draw(screen *ebiten.Image, w, h float64) {
	for i, ob := range o.orbs {
		px, py := o.Offset(i)
		dx, dy := o.Drift(i)
		cx := ob.fx*w + px + dx
		cy := ob.fy*h + py + dy
		// stacked translucent discs stand in for a blur
		for l := 0; l < orbGlowLayers; l++ {
			r := ob.radius * (1 - float64(l)/orbGlowLayers)
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), withAlpha(ob.color, 0.035), true)
		}
	}
}
