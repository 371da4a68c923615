package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 18, A: 255}
	panelColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	accentColor     = color.RGBA{R: 139, G: 92, B: 246, A: 255}
	textColor       = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	mutedColor      = color.RGBA{R: 150, G: 150, B: 170, A: 255}
)

const (
	cardSlide   = 20.0
	badgeSlide  = 15.0
	badgeShrink = 0.05
	cardPress   = 0.98
	glowRadius  = 50.0
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := float64(g.width), float64(g.height)

	if g.orbs != nil {
		g.orbs.Draw(screen, w, h)
	}
	if g.field != nil {
		g.ensureLayer(screen.Bounds())
		g.field.Draw(imageSurface{img: g.layer})
		screen.DrawImage(g.layer, nil)
	}

	g.drawAvatar(screen)
	g.drawName(screen)
	g.drawBadges(screen)
	g.drawQuote(screen)
	g.drawCards(screen)
	g.drawFooter(screen)

	if g.cursor != nil {
		g.cursor.Draw(screen)
	}
	g.drawStatus(screen)
}

// ensureLayer keeps the particle layer the size of the screen.
func (g *Game) ensureLayer(bounds image.Rectangle) {
	if g.layer != nil && g.layer.Bounds().Eq(bounds) {
		return
	}
	if g.layer != nil {
		g.layer.Deallocate()
	}
	g.layer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
}

// toScreen converts a page y coordinate to the window.
func (g *Game) toScreen(y float64) float64 { return y - g.scrollY }

func (g *Game) drawAvatar(screen *ebiten.Image) {
	cx, cy, r := g.page.AvatarX, g.toScreen(g.page.AvatarY), g.page.AvatarR

	glowAlpha, glowScale := 0.35, 1.0
	if g.avatarHover {
		glowAlpha, glowScale = 0.7, 1.2
	}
	if g.player != nil {
		glowScale += math.Min(0.3, g.player.Level()*3)
	}
	for l := 0; l < 4; l++ {
		gr := r * glowScale * (1.3 - 0.1*float64(l))
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(gr), withAlpha(accentColor, glowAlpha/6), true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), color.RGBA{R: 30, G: 27, B: 48, A: 255}, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 3, accentColor, true)

	drawText(screen, initialsOf(g.cfg.Name), bodyFace, cx, cy, text.AlignCenter, textColor)
}

// drawName types the name out from the left edge of where the full name
// will sit, so the line does not shift while typing.
func (g *Game) drawName(screen *ebiten.Image) {
	elapsed := g.typingElapsed()
	typed := g.typer.Typed(elapsed)

	left := centerLeft(g.typer.Text, nameFace, g.page.AvatarX)
	cy := g.toScreen(g.page.NameY + nameSize/2)
	drawText(screen, typed, nameFace, left, cy, text.AlignStart, textColor)
	if g.typer.CaretVisible(elapsed) {
		x := left + textWidth(typed, nameFace) + 2
		vector.DrawFilledRect(screen, float32(x), float32(cy-nameSize*0.4), 2, float32(nameSize*0.8), accentColor, false)
	}
}

func (g *Game) drawBadges(screen *ebiten.Image) {
	for i, b := range g.page.Badges {
		p := g.badges.Progress(i)
		r := b.Rect.offset(0, badgeSlide*(1-p)).scale(1 - badgeShrink*(1-p))
		r.Y = g.toScreen(r.Y)

		fill := 0.06
		if i == g.hoverBadge {
			fill = 0.16
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(accentColor, fill*p), true)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, withAlpha(accentColor, 0.5*p), true)
		drawText(screen, b.Label, bodyFace, r.X+badgePadding/2, r.Y+r.H/2, text.AlignStart, withAlpha(textColor, p))
	}
}

func (g *Game) drawQuote(screen *ebiten.Image) {
	p := g.reveal.Progress(revealQuote)
	r := g.page.Quote.offset(0, revealLift*(1-p))
	r.Y = g.toScreen(r.Y)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(panelColor, 0.04*p), true)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), 3, float32(r.H), withAlpha(accentColor, p), true)
	drawText(screen, quoteLine, bodyFace, r.X+20, r.Y+r.H/2, text.AlignStart, withAlpha(mutedColor, p))
}

func (g *Game) drawCards(screen *ebiten.Image) {
	section := g.reveal.Progress(revealSocial)
	lift := revealLift * (1 - section)
	drawText(screen, socialHeading, bodyFace, g.page.Social.X, g.toScreen(g.page.Social.Y+lift)+9, text.AlignStart, withAlpha(mutedColor, section))

	for i, c := range g.page.Cards {
		p := g.cards.Progress(i) * section
		r := c.Rect.offset(0, cardSlide*(1-g.cards.Progress(i))+lift)
		if i == g.touchedCard {
			r = r.scale(cardPress)
		}
		r.Y = g.toScreen(r.Y)

		fill := 0.05
		if i == g.hoverCard {
			fill = 0.09
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(panelColor, fill*p), true)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, withAlpha(panelColor, 0.12*p), true)

		if i == g.hoverCard {
			g.drawGlow(screen, r, p)
		}
		drawText(screen, c.Title, bodyFace, r.X+20, r.Y+22, text.AlignStart, withAlpha(textColor, p))
		drawText(screen, c.Handle, bodyFace, r.X+20, r.Y+40, text.AlignStart, withAlpha(mutedColor, p))
	}
}

// drawGlow paints the pointer-following glow clipped to the card.
func (g *Game) drawGlow(screen *ebiten.Image, r rect, alpha float64) {
	clip := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H)).Intersect(screen.Bounds())
	if clip.Empty() {
		return
	}
	sub := screen.SubImage(clip).(*ebiten.Image)
	vector.DrawFilledCircle(sub, float32(r.X+g.glowX), float32(r.Y+g.glowY), glowRadius, withAlpha(accentColor, 0.18*alpha), true)
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	p := g.reveal.Progress(revealFooter)
	r := g.page.Footer.offset(0, revealLift*(1-p))
	drawText(screen, copyright(g.now()), bodyFace, r.X+r.W/2, g.toScreen(r.Y)+20, text.AlignCenter, withAlpha(mutedColor, p))
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "O: load profile  Wheel: scroll  Esc/Q: quit"
	if g.cfg.Profile != "" {
		status += " | profile: " + g.cfg.Profile
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}

// initialsOf returns up to two leading letters of the words in name.
func initialsOf(name string) string {
	var out []rune
	start := true
	for _, r := range name {
		if r == ' ' {
			start = true
			continue
		}
		if start && len(out) < 2 {
			out = append(out, r)
		}
		start = false
	}
	return string(out)
}
