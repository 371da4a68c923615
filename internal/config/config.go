package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/iburimskiy/portfolio-backdrop/internal/particles"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	TPS          = 60

	// Page geometry
	PageWidth    = 560
	CardHeight   = 64
	CardGap      = 14
	BadgeHeight  = 28
	AvatarRadius = 56

	// Cursor and orbs (fraction of remaining distance per frame)
	CursorDotFollow  = 0.3
	CursorRingFollow = 0.15
	OrbFollow        = 0.03
	OrbSpeedStep     = 15

	// Typewriter
	TypeDelay    = 800 * time.Millisecond
	TypeInterval = 100 * time.Millisecond
	CaretLinger  = 2 * time.Second

	// Entrance stagger
	CardStaggerBase  = 400 * time.Millisecond
	CardStaggerStep  = 100 * time.Millisecond
	BadgeStaggerBase = 300 * time.Millisecond
	BadgeStaggerStep = 80 * time.Millisecond

	// Scroll reveal
	RevealBottomMargin = 100
	RevealThreshold    = 0.1
	ScrollStep         = 40

	DefaultName = "Ayush Kumar"
	DefaultEnv  = ".env"
)

// Config holds the runtime settings read from the environment and dotenv profiles.
type Config struct {
	Width, Height int

	// ReducedMotion is read once at startup.
	ReducedMotion bool
	CoarsePointer bool

	SoundEnabled bool
	Volume       int // 0-100

	Name    string
	Palette []string
	Seed    int64

	// Profile is the dotenv file the config was last loaded from, if any.
	Profile string
}

func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		SoundEnabled: true,
		Volume:       100,
		Name:         DefaultName,
		Palette:      append([]string(nil), particles.DefaultHex...),
	}
}

// Load builds a Config from dotenv files overlaid with the process environment.
// With no files the default .env is read if present.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnv); err == nil {
			files = []string{DefaultEnv}
		}
	}
	return load(files, false)
}

// LoadProfile builds a Config from a profile picked at runtime. Unlike Load,
// the file wins over PORTFOLIO_* variables in the process environment.
func LoadProfile(path string) (Config, error) {
	return load([]string{path}, true)
}

func load(files []string, fileWins bool) (Config, error) {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, "PORTFOLIO_") {
			env[k] = v
		}
	}

	read := map[string]string{}
	profile := ""
	if len(files) > 0 {
		var err error
		read, err = godotenv.Read(files...)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read profile %s", strings.Join(files, ","))
		}
		profile = files[len(files)-1]
	}

	// by default the environment wins, matching godotenv.Load
	vars := map[string]string{}
	first, second := read, env
	if fileWins {
		first, second = env, read
	}
	for k, v := range first {
		vars[k] = v
	}
	for k, v := range second {
		vars[k] = v
	}

	cfg, err := Parse(vars)
	if err != nil {
		return Config{}, err
	}
	cfg.Profile = profile
	log.Printf("[CONFIG] loaded %d variables (profile=%q)", len(vars), profile)
	return cfg, nil
}

// Parse converts PORTFOLIO_* variables into a Config on top of Default.
func Parse(vars map[string]string) (Config, error) {
	cfg := Default()

	if err := parseInt(vars, "PORTFOLIO_WIDTH", &cfg.Width); err != nil {
		return Config{}, err
	}
	if err := parseInt(vars, "PORTFOLIO_HEIGHT", &cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, errors.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if err := parseBool(vars, "PORTFOLIO_REDUCED_MOTION", &cfg.ReducedMotion); err != nil {
		return Config{}, err
	}
	if err := parseBool(vars, "PORTFOLIO_COARSE_POINTER", &cfg.CoarsePointer); err != nil {
		return Config{}, err
	}
	if err := parseBool(vars, "PORTFOLIO_SOUND", &cfg.SoundEnabled); err != nil {
		return Config{}, err
	}
	if err := parseInt(vars, "PORTFOLIO_VOLUME", &cfg.Volume); err != nil {
		return Config{}, err
	}
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 100 {
		cfg.Volume = 100
	}
	if v, ok := vars["PORTFOLIO_SEED"]; ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "PORTFOLIO_SEED")
		}
		cfg.Seed = seed
	}
	if v := strings.TrimSpace(vars["PORTFOLIO_NAME"]); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(vars["PORTFOLIO_PALETTE"]); v != "" {
		var palette []string
		for _, hex := range strings.Split(v, ",") {
			if hex = strings.TrimSpace(hex); hex != "" {
				palette = append(palette, hex)
			}
		}
		cfg.Palette = palette
	}
	if _, err := cfg.ParsePalette(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParsePalette converts the hex palette into particle colors.
func (c Config) ParsePalette() (particles.Palette, error) {
	return particles.ParseHex(c.Palette)
}

func parseInt(vars map[string]string, key string, dst *int) error {
	v, ok := vars[key]
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = n
	return nil
}

func parseBool(vars map[string]string, key string, dst *bool) error {
	v, ok := vars[key]
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = b
	return nil
}
