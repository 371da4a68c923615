package game

import (
	"log"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

func pickProfileFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Profile"),
		zenity.FileFilters{{
			Name:     "Profiles",
			Patterns: []string{"*.env"},
		}},
	)
}

// openProfile asks for a dotenv profile and applies it. Cancelling the
// dialog is not an error.
func (g *Game) openProfile() error {
	path, err := g.pickProfile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return errors.Wrap(err, "select profile")
	}
	return g.applyProfile(path)
}

// applyProfile loads palette, sound and name settings from path. Window size
// and the motion and pointer preferences keep their startup values.
func (g *Game) applyProfile(path string) error {
	cfg, err := config.LoadProfile(path)
	if err != nil {
		return err
	}
	palette, err := cfg.ParsePalette()
	if err != nil {
		return err
	}

	cfg.Width, cfg.Height = g.cfg.Width, g.cfg.Height
	cfg.ReducedMotion = g.cfg.ReducedMotion
	cfg.CoarsePointer = g.cfg.CoarsePointer
	g.cfg = cfg

	if g.field != nil {
		g.field.SetPalette(palette)
	}
	if g.player != nil {
		g.player.SetEnabled(cfg.SoundEnabled)
		g.player.SetVolume(cfg.Volume)
	}
	if cfg.Name != g.typer.Text {
		g.typer.Text = cfg.Name
		g.typeStart = g.ticks
	}
	g.lastErr = nil
	log.Printf("[GAME] applied profile %s", path)
	return nil
}
