package particles

import (
	"image/color"
	"math"
)

// Surface is the 2D target the field paints onto. Alpha is in [0, 1].
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha float64)
}

// PulseOpacity is the alpha a particle is drawn with this frame.
func PulseOpacity(p Particle) float64 {
	return math.Max(0, p.Opacity+PulseAmplitude*math.Sin(p.Phase))
}

// LinkAlpha returns the stroke alpha for two particles d apart and whether a
// link is drawn at all. The threshold is exclusive.
func LinkAlpha(d float64) (float64, bool) {
	if d < 0 || d >= LinkDistance {
		return 0, false
	}
	return LinkMaxAlpha * (1 - d/LinkDistance), true
}

// Draw clears the surface and paints particles then links.
func (f *Field) Draw(s Surface) {
	if s == nil {
		return
	}
	s.Clear()

	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, p.Color, PulseOpacity(p))
	}

	// O(n^2) is fine with n capped at MaxParticles
	for i := 0; i < len(f.particles); i++ {
		p1 := f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			p2 := f.particles[j]
			d := math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
			if alpha, ok := LinkAlpha(d); ok {
				s.StrokeLine(p1.X, p1.Y, p2.X, p2.Y, LinkWidth, LinkColor, alpha)
			}
		}
	}
}

// Frame runs one scheduler callback: advance, then draw.
func (f *Field) Frame(s Surface) {
	f.Step()
	f.Draw(s)
}
