package game

import (
	"math"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

var (
	badgeLabels = []string{"Go", "Distributed Systems", "Open Source", "Creative Coding", "UI Motion"}
	cardLabels  = []struct{ Title, Handle string }{
		{"GitHub", "@ayush"},
		{"LinkedIn", "in/ayush-kumar"},
		{"X", "@ayush_codes"},
		{"Email", "hello@ayush.dev"},
		{"Resume", "PDF, 2 pages"},
	}
	quoteText     = "Make it work, make it right, make it fast."
	quoteLine     = "“" + quoteText + "”"
	socialHeading = "Find me online"
)

// page indexes of the scroll-reveal targets
const (
	revealQuote = iota
	revealSocial
	revealFooter
)

const (
	badgeGap     = 10
	badgePadding = 24
	pageMargin   = 20
)

type badge struct {
	Label string
	Rect  rect
}

type card struct {
	Title, Handle string
	Rect          rect
}

// page is the static geometry of the portfolio in page coordinates
// (y grows downward from the top of the document, before scrolling).
type page struct {
	Width   float64
	AvatarX float64
	AvatarY float64
	AvatarR float64
	NameY   float64
	Badges  []badge
	Quote   rect
	Social  rect
	Cards   []card
	Footer  rect
	Height  float64
}

func layoutPage(viewportW float64) page {
	w := math.Min(config.PageWidth, math.Max(0, viewportW-2*pageMargin))
	left := (viewportW - w) / 2
	p := page{Width: w}

	p.AvatarX = viewportW / 2
	p.AvatarY = 120
	p.AvatarR = config.AvatarRadius
	p.NameY = p.AvatarY + p.AvatarR + 40

	// badges flow left to right and wrap, each row centered
	y := p.NameY + nameSize + 24
	var row []badge
	rowW := 0.0
	flush := func() {
		x := (viewportW - rowW) / 2
		for _, b := range row {
			b.Rect.X = x
			b.Rect.Y = y
			p.Badges = append(p.Badges, b)
			x += b.Rect.W + badgeGap
		}
		row, rowW = nil, 0
		y += config.BadgeHeight + badgeGap
	}
	for _, label := range badgeLabels {
		bw := math.Ceil(textWidth(label, bodyFace)) + badgePadding
		next := rowW + bw
		if len(row) > 0 {
			next += badgeGap
		}
		if len(row) > 0 && next > w {
			flush()
			next = bw
		}
		row = append(row, badge{Label: label, Rect: rect{W: bw, H: config.BadgeHeight}})
		rowW = next
	}
	if len(row) > 0 {
		flush()
	}

	y += 20
	p.Quote = rect{left, y, w, 80}
	y += p.Quote.H + 40

	cardsTop := y + 36
	for i, c := range cardLabels {
		cy := cardsTop + float64(i)*(config.CardHeight+config.CardGap)
		p.Cards = append(p.Cards, card{Title: c.Title, Handle: c.Handle, Rect: rect{left, cy, w, config.CardHeight}})
	}
	y = cardsTop + float64(len(cardLabels))*(config.CardHeight+config.CardGap)
	p.Social = rect{left, cardsTop - 36, w, y - (cardsTop - 36)}

	y += 40
	p.Footer = rect{left, y, w, 40}
	// leave room below the footer so it can clear the reveal margin
	p.Height = p.Footer.Y + p.Footer.H + config.RevealBottomMargin + 20
	return p
}

// revealTargets lists the sections observed for scroll reveal, in index order.
func (p page) revealTargets() []rect {
	return []rect{revealQuote: p.Quote, revealSocial: p.Social, revealFooter: p.Footer}
}

// hitAvatar reports whether page point (x, y) is on the avatar.
func (p page) hitAvatar(x, y float64) bool {
	return math.Hypot(x-p.AvatarX, y-p.AvatarY) <= p.AvatarR
}

func (p page) hitCard(x, y float64) int {
	for i, c := range p.Cards {
		if c.Rect.contains(x, y) {
			return i
		}
	}
	return -1
}

func (p page) hitBadge(x, y float64) int {
	for i, b := range p.Badges {
		if b.Rect.contains(x, y) {
			return i
		}
	}
	return -1
}

// maxScroll is how far the page can scroll in a viewport of height h.
func (p page) maxScroll(h float64) float64 {
	return math.Max(0, p.Height-h)
}
