package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/portfolio-backdrop/internal/particles"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != WindowWidth || cfg.Height != WindowHeight {
		t.Errorf("expected %dx%d, got %dx%d", WindowWidth, WindowHeight, cfg.Width, cfg.Height)
	}
	if cfg.ReducedMotion {
		t.Error("reduced motion should default to false")
	}
	if !cfg.SoundEnabled || cfg.Volume != 100 {
		t.Errorf("expected sound on at full volume, got %v/%d", cfg.SoundEnabled, cfg.Volume)
	}
	if cfg.Name != DefaultName {
		t.Errorf("expected name %q, got %q", DefaultName, cfg.Name)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("expected 5 palette entries, got %d", len(cfg.Palette))
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"PORTFOLIO_WIDTH":          "800",
		"PORTFOLIO_HEIGHT":         "600",
		"PORTFOLIO_REDUCED_MOTION": "true",
		"PORTFOLIO_COARSE_POINTER": "1",
		"PORTFOLIO_SOUND":          "false",
		"PORTFOLIO_VOLUME":         "40",
		"PORTFOLIO_NAME":           " Jane Doe ",
		"PORTFOLIO_PALETTE":        "#ff0000, #00ff00",
		"PORTFOLIO_SEED":           "42",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.ReducedMotion || !cfg.CoarsePointer {
		t.Error("expected reduced motion and coarse pointer to be set")
	}
	if cfg.SoundEnabled {
		t.Error("expected sound disabled")
	}
	if cfg.Volume != 40 {
		t.Errorf("expected volume 40, got %d", cfg.Volume)
	}
	if cfg.Name != "Jane Doe" {
		t.Errorf("expected trimmed name, got %q", cfg.Name)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}

	palette, err := cfg.ParsePalette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	want := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}}
	if len(palette) != len(want) {
		t.Fatalf("expected %d colors, got %d", len(want), len(palette))
	}
	for i := range want {
		if palette[i] != want[i] {
			t.Errorf("color %d: expected %v, got %v", i, want[i], palette[i])
		}
	}
}

func TestParseVolumeClamped(t *testing.T) {
	cfg, err := Parse(map[string]string{"PORTFOLIO_VOLUME": "250"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Volume != 100 {
		t.Errorf("expected 100, got %d", cfg.Volume)
	}

	cfg, err = Parse(map[string]string{"PORTFOLIO_VOLUME": "-5"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Volume != 0 {
		t.Errorf("expected 0, got %d", cfg.Volume)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad width":   {"PORTFOLIO_WIDTH": "wide"},
		"zero height": {"PORTFOLIO_HEIGHT": "0"},
		"bad bool":    {"PORTFOLIO_REDUCED_MOTION": "maybe"},
		"bad seed":    {"PORTFOLIO_SEED": "x"},
		"bad color":   {"PORTFOLIO_PALETTE": "#zzzzzz"},
	}
	for name, vars := range cases {
		if _, err := Parse(vars); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calm.env")
	data := "PORTFOLIO_NAME=Calm\nPORTFOLIO_VOLUME=10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "Calm" || cfg.Volume != 10 {
		t.Errorf("profile not applied: %+v", cfg)
	}
	if cfg.Profile != path {
		t.Errorf("expected profile %q, got %q", path, cfg.Profile)
	}
}

func TestLoadEnvOverridesProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.env")
	if err := os.WriteFile(path, []byte("PORTFOLIO_VOLUME=10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_VOLUME", "70")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Volume != 70 {
		t.Errorf("expected env to win with 70, got %d", cfg.Volume)
	}
}

func TestLoadMissingProfile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for missing explicit profile")
	}
}

func TestLoadProfileWinsOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.env")
	if err := os.WriteFile(path, []byte("PORTFOLIO_NAME=From File\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_NAME", "From Shell")
	t.Setenv("PORTFOLIO_VOLUME", "30")

	cfg, err := LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "From File" {
		t.Errorf("picked profile should win, got %q", cfg.Name)
	}
	if cfg.Volume != 30 {
		t.Errorf("keys missing from the profile still come from the env, got %d", cfg.Volume)
	}
}

func TestDefaultPaletteMatchesParticles(t *testing.T) {
	palette, err := Default().ParsePalette()
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != len(particles.DefaultPalette) {
		t.Fatalf("expected %d colors, got %d", len(particles.DefaultPalette), len(palette))
	}
	for i := range palette {
		if palette[i] != particles.DefaultPalette[i] {
			t.Errorf("color %d: %v != %v", i, palette[i], particles.DefaultPalette[i])
		}
	}
}
