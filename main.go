package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/game"
	"github.com/iburimskiy/portfolio-backdrop/internal/sound"
)

func main() {
	profile := flag.String("profile", "", "dotenv profile to load (defaults to ./.env when present)")
	reduced := flag.Bool("reduced-motion", false, "disable particles, orbs and the custom cursor")
	flag.Parse()

	var files []string
	if *profile != "" {
		files = append(files, *profile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		log.Fatal(err)
	}
	if *reduced {
		cfg.ReducedMotion = true
	}

	player := sound.NewPlayer(cfg.SoundEnabled, cfg.Volume)
	g, err := game.New(cfg, player)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Name + " - Portfolio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if g.CustomCursor() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
