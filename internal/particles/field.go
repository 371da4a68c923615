// Package particles simulates and renders the drifting background dots and
// the faint links drawn between neighbours.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Simulation constants
const (
	MaxParticles    = 80
	AreaPerParticle = 15000.0
	MaxSpeed        = 0.15 // per axis, per frame
	MinRadius       = 0.5
	MaxRadius       = 2.5
	MinOpacity      = 0.2
	MaxOpacity      = 0.7
	PhaseStep       = 0.02 // radians per frame
	PulseAmplitude  = 0.2
	LinkDistance    = 120.0
	LinkMaxAlpha    = 0.1
	LinkWidth       = 0.5
)

// Palette is the set of colors a particle may be assigned at creation.
type Palette []color.RGBA

// DefaultHex is purple, blue, pink, cyan and white.
var DefaultHex = []string{"#8b5cf6", "#3b82f6", "#ec4899", "#06b6d4", "#ffffff"}

// DefaultPalette is DefaultHex parsed.
var DefaultPalette = mustParseHex(DefaultHex)

// ParseHex converts "#rrggbb" colors into an opaque palette.
func ParseHex(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette is empty")
	}
	out := make(Palette, 0, len(hexes))
	for _, hex := range hexes {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "palette color %q", hex)
		}
		r, g, b := col.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}

func mustParseHex(hexes []string) Palette {
	p, err := ParseHex(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// LinkColor is used for every connection line regardless of particle color.
var LinkColor = color.RGBA{R: 139, G: 92, B: 246, A: 255}

// Particle is a single drifting dot. It has no identity beyond its index.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64 // base opacity before the pulse
	Phase   float64 // radians, grows without bound
	Color   color.RGBA
}

// Field owns the particle collection for one viewport.
type Field struct {
	width, height float64
	particles     []Particle
	palette       Palette
	rng           *rand.Rand
}

// Count returns how many particles a viewport of w x h holds.
func Count(w, h float64) int {
	if w <= 0 || h <= 0 || math.IsNaN(w) || math.IsNaN(h) {
		return 0
	}
	n := math.Floor(w * h / AreaPerParticle)
	if n > MaxParticles {
		return MaxParticles
	}
	return int(n)
}

// New creates a field sized to the viewport and seeds it.
// A nil rng or empty palette falls back to defaults.
func New(width, height float64, palette Palette, rng *rand.Rand) *Field {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	f := &Field{
		palette: append(Palette(nil), palette...),
		rng:     rng,
	}
	f.Resize(width, height)
	return f
}

// Resize discards every particle and reseeds for the new viewport.
func (f *Field) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height

	n := Count(width, height)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = f.spawn()
	}
	// swap in one assignment so a frame never sees a half-built field
	f.particles = particles
}

// SetPalette replaces the palette and reseeds so every particle draws from it.
func (f *Field) SetPalette(palette Palette) {
	if len(palette) == 0 {
		return
	}
	f.palette = append(Palette(nil), palette...)
	f.Resize(f.width, f.height)
}

func (f *Field) spawn() Particle {
	return Particle{
		X:       f.rng.Float64() * f.width,
		Y:       f.rng.Float64() * f.height,
		VX:      (f.rng.Float64()*2 - 1) * MaxSpeed,
		VY:      (f.rng.Float64()*2 - 1) * MaxSpeed,
		Radius:  MinRadius + f.rng.Float64()*(MaxRadius-MinRadius),
		Opacity: MinOpacity + f.rng.Float64()*(MaxOpacity-MinOpacity),
		Phase:   f.rng.Float64() * 2 * math.Pi,
		Color:   f.palette[f.rng.Intn(len(f.palette))],
	}
}

// Step advances every particle by one frame. Speeds are per frame, not per
// second, so perceived speed follows the tick rate.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X = wrap(p.X+p.VX, f.width)
		p.Y = wrap(p.Y+p.VY, f.height)
		p.Phase += PhaseStep
	}
}

// wrap maps v into [0, size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// v+size can round up to size for tiny negative v
	if v >= size {
		v = 0
	}
	return v
}

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Particles returns a copy of the current collection.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}
