package particles

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func newTestField(w, h float64) *Field {
	return New(w, h, nil, rand.New(rand.NewSource(1)))
}

func TestCount(t *testing.T) {
	tests := []struct {
		w, h float64
		want int
	}{
		{800, 600, 32},
		{100, 100, 0},
		{1920, 1080, 80},
		{0, 600, 0},
		{800, 0, 0},
		{150, 100, 1}, // exactly one area unit
		{149, 100, 0}, // just under
		{-10, 500, 0}, // negative treated as empty
		{1000, 1200, 80},
	}
	for _, tt := range tests {
		if got := Count(tt.w, tt.h); got != tt.want {
			t.Errorf("Count(%v, %v) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestCountMatchesFormula(t *testing.T) {
	for w := 0.0; w <= 2000; w += 37 {
		for h := 0.0; h <= 1500; h += 53 {
			want := int(math.Min(MaxParticles, math.Floor(w*h/AreaPerParticle)))
			if got := Count(w, h); got != want {
				t.Fatalf("Count(%v, %v) = %d, want %d", w, h, got, want)
			}
		}
	}
}

func TestNewSeedsWithinRanges(t *testing.T) {
	f := newTestField(800, 600)
	if f.Len() != 32 {
		t.Fatalf("expected 32 particles, got %d", f.Len())
	}

	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d position out of viewport: (%f, %f)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > MaxSpeed || math.Abs(p.VY) > MaxSpeed {
			t.Errorf("particle %d velocity too large: (%f, %f)", i, p.VX, p.VY)
		}
		if p.Radius < MinRadius || p.Radius >= MaxRadius {
			t.Errorf("particle %d radius out of range: %f", i, p.Radius)
		}
		if p.Opacity < MinOpacity || p.Opacity >= MaxOpacity {
			t.Errorf("particle %d opacity out of range: %f", i, p.Opacity)
		}
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Errorf("particle %d phase out of range: %f", i, p.Phase)
		}
		found := false
		for _, c := range DefaultPalette {
			if c == p.Color {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("particle %d color %v not in palette", i, p.Color)
		}
	}
}

func TestResizeReseeds(t *testing.T) {
	f := newTestField(800, 600)
	before := f.Particles()

	f.Resize(1920, 1080)
	if f.Len() != 80 {
		t.Fatalf("expected 80 particles after resize, got %d", f.Len())
	}
	w, h := f.Size()
	if w != 1920 || h != 1080 {
		t.Errorf("expected size 1920x1080, got %vx%v", w, h)
	}

	// no particle should survive: the first 32 must not be the old ones
	same := 0
	after := f.Particles()
	for i := range before {
		if before[i] == after[i] {
			same++
		}
	}
	if same != 0 {
		t.Errorf("expected a full reseed, %d particles carried over", same)
	}
}

func TestResizeToDegenerate(t *testing.T) {
	f := newTestField(800, 600)
	f.Resize(0, 0)
	if f.Len() != 0 {
		t.Fatalf("expected no particles, got %d", f.Len())
	}
	// stepping and drawing an empty field must be harmless
	rec := &recorder{}
	for i := 0; i < 10; i++ {
		f.Frame(rec)
	}
	if rec.clears != 10 || len(rec.circles) != 0 || len(rec.lines) != 0 {
		t.Errorf("unexpected draw calls: %+v", rec)
	}
}

func TestStepKeepsParticlesInViewport(t *testing.T) {
	f := newTestField(400, 300)
	for step := 0; step < 20000; step++ {
		f.Step()
		for i, p := range f.particles {
			if p.X < 0 || p.X >= 400 || p.Y < 0 || p.Y >= 300 {
				t.Fatalf("step %d particle %d escaped: (%f, %f)", step, i, p.X, p.Y)
			}
		}
	}
}

func TestStepWrapsAtEdges(t *testing.T) {
	f := newTestField(100, 200)
	f.particles = []Particle{
		{X: 0.05, Y: 199.95, VX: -0.1, VY: 0.1},
		{X: 99.95, Y: 0.05, VX: 0.1, VY: -0.1},
	}
	f.Step()

	p := f.particles[0]
	if math.Abs(p.X-99.95) > 1e-9 || math.Abs(p.Y-0.05) > 1e-9 {
		t.Errorf("expected wrap to (99.95, 0.05), got (%f, %f)", p.X, p.Y)
	}
	p = f.particles[1]
	if math.Abs(p.X-0.05) > 1e-9 || math.Abs(p.Y-199.95) > 1e-9 {
		t.Errorf("expected wrap to (0.05, 199.95), got (%f, %f)", p.X, p.Y)
	}
}

func TestStepAdvancesPhase(t *testing.T) {
	f := newTestField(800, 600)
	before := f.Particles()
	f.Step()
	for i, p := range f.particles {
		if math.Abs(p.Phase-before[i].Phase-PhaseStep) > 1e-12 {
			t.Errorf("particle %d phase advanced by %f", i, p.Phase-before[i].Phase)
		}
		if p.VX != before[i].VX || p.VY != before[i].VY {
			t.Errorf("particle %d velocity changed", i)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{5, 10, 5},
		{10, 10, 0},
		{-1, 10, 9},
		{23, 10, 3},
		{-1e-18, 10, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.size); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrap(%v, %v) = %v, want %v", tt.v, tt.size, got, tt.want)
		}
	}
}

func TestSetPalette(t *testing.T) {
	f := newTestField(800, 600)
	only := Palette{{R: 1, G: 2, B: 3, A: 255}}
	f.SetPalette(only)
	if f.Len() != 32 {
		t.Fatalf("expected 32 particles, got %d", f.Len())
	}
	for i, p := range f.particles {
		if p.Color != only[0] {
			t.Errorf("particle %d color %v, want %v", i, p.Color, only[0])
		}
	}

	f.SetPalette(nil)
	if len(f.palette) != 1 {
		t.Error("empty palette should be ignored")
	}
}

func TestParseHex(t *testing.T) {
	if DefaultPalette[0] != (color.RGBA{R: 139, G: 92, B: 246, A: 255}) {
		t.Errorf("unexpected purple %v", DefaultPalette[0])
	}
	if DefaultPalette[4] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("unexpected white %v", DefaultPalette[4])
	}
	if _, err := ParseHex(nil); err == nil {
		t.Error("expected error for an empty palette")
	}
	if _, err := ParseHex([]string{"#8b5cf6", "purple"}); err == nil {
		t.Error("expected error for a named color")
	}
}
