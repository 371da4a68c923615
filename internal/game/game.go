package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/particles"
	"github.com/iburimskiy/portfolio-backdrop/internal/sound"
)

type point struct {
	X, Y float64
}

// input is one frame's worth of pointer state in window coordinates.
type input struct {
	X, Y     float64
	Inside   bool
	Pressed  bool // primary button held
	Clicked  bool // primary button went down this frame
	Wheel    float64
	Touches  []point // touches that started this frame
	Touching bool
}

// CuePlayer plays the interface sounds. *sound.Player implements it.
type CuePlayer interface {
	Unlock() error
	Play(c sound.Cue)
	SetEnabled(enabled bool)
	SetVolume(volume int)
	Level() float64
}

// Game renders the portfolio page and its effects. It implements ebiten.Game.
type Game struct {
	cfg    config.Config
	player CuePlayer

	// nil when reduced motion is requested
	field  *particles.Field
	orbs   *Orbs
	cursor *Cursor // also nil for coarse pointers

	layer *ebiten.Image

	typer     Typewriter
	typeStart int
	cards     *Entrance
	badges    *Entrance
	reveal    *Reveal
	page      page

	width, height      int
	pendingW, pendingH int
	pending            bool
	scrollY            float64
	ticks              int

	hoverCard   int
	hoverBadge  int
	avatarHover bool
	touchedCard int
	glowX       float64 // pointer within the hovered card
	glowY       float64

	now         func() time.Time
	pickProfile func() (string, error)
	lastErr     error
}

func New(cfg config.Config, player CuePlayer) (*Game, error) {
	palette, err := cfg.ParsePalette()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:         cfg,
		player:      player,
		width:       cfg.Width,
		height:      cfg.Height,
		hoverCard:   -1,
		hoverBadge:  -1,
		touchedCard: -1,
		now:         time.Now,
		pickProfile: pickProfileFile,
	}
	g.page = layoutPage(float64(g.width))
	g.typer = Typewriter{
		Text:     cfg.Name,
		Delay:    config.TypeDelay,
		Interval: config.TypeInterval,
		Linger:   config.CaretLinger,
	}
	g.cards = NewEntrance(len(g.page.Cards), config.CardStaggerBase, config.CardStaggerStep)
	g.badges = NewEntrance(len(g.page.Badges), config.BadgeStaggerBase, config.BadgeStaggerStep)
	g.reveal = NewReveal(g.page.revealTargets())

	if cfg.ReducedMotion {
		g.reveal.RevealAll()
		log.Printf("[GAME] reduced motion requested: particles, cursor and orbs disabled")
		return g, nil
	}

	g.field = particles.New(float64(g.width), float64(g.height), palette, rand.New(rand.NewSource(seed)))
	g.orbs = NewOrbs(seed)
	if !cfg.CoarsePointer {
		g.cursor = &Cursor{}
	}
	log.Printf("[GAME] started %dx%d with %d particles", g.width, g.height, g.field.Len())
	return g, nil
}

// CustomCursor reports whether the system cursor should be hidden.
func (g *Game) CustomCursor() bool { return g.cursor != nil }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openProfile(); err != nil {
			g.lastErr = err
			log.Printf("[GAME] profile: %v", err)
		}
	}
	g.step(g.readInput())
	return nil
}

func (g *Game) readInput() input {
	mx, my := ebiten.CursorPosition()
	in := input{
		X:       float64(mx),
		Y:       float64(my),
		Inside:  mx >= 0 && my >= 0 && mx < g.width && my < g.height,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	_, in.Wheel = ebiten.Wheel()
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, point{float64(x), float64(y)})
	}
	in.Touching = len(ebiten.AppendTouchIDs(nil)) > 0
	return in
}

// step advances everything by one frame. Speeds are per frame, so the
// effects run faster or slower with the tick rate.
func (g *Game) step(in input) {
	if g.pending && (g.pendingW != g.width || g.pendingH != g.height) {
		g.resize(g.pendingW, g.pendingH)
	}
	g.pending = false
	g.ticks++
	elapsed := g.elapsed()

	// audio may only start from a user gesture
	if (in.Clicked || len(in.Touches) > 0) && g.player != nil {
		if err := g.player.Unlock(); err != nil {
			log.Printf("[SOUND] %v", err)
		}
	}

	h := float64(g.height)
	g.scrollY = math.Max(0, math.Min(g.scrollY-in.Wheel*config.ScrollStep, g.page.maxScroll(h)))

	g.handlePointer(in)
	g.handleTouch(in)

	g.cards.Update(elapsed)
	g.badges.Update(elapsed)
	g.reveal.Observe(g.scrollY, h)

	if g.cursor != nil {
		hovering := g.hoverCard >= 0 || g.hoverBadge >= 0 || g.avatarHover
		g.cursor.Update(in.X, in.Y, in.Inside, hovering, in.Pressed)
	}
	if g.orbs != nil {
		if in.Inside {
			g.orbs.Point(in.X, in.Y, float64(g.width), h)
		}
		g.orbs.Update()
	}
	if g.field != nil {
		g.field.Step()
	}
}

// handlePointer updates hover state and plays cues on enter and click.
func (g *Game) handlePointer(in input) {
	card, badge, avatar := -1, -1, false
	if in.Inside {
		px, py := in.X, in.Y+g.scrollY
		card = g.page.hitCard(px, py)
		badge = g.page.hitBadge(px, py)
		avatar = g.page.hitAvatar(px, py)
		if card >= 0 {
			r := g.page.Cards[card].Rect
			g.glowX, g.glowY = px-r.X, py-r.Y
		}
	}

	if card >= 0 && card != g.hoverCard {
		g.play(sound.CuePop)
	}
	if badge >= 0 && badge != g.hoverBadge {
		g.play(sound.CueSoft)
	}
	if avatar && in.Clicked {
		g.play(sound.CueClick)
	}
	g.hoverCard, g.hoverBadge, g.avatarHover = card, badge, avatar
}

// handleTouch presses a card while a touch that started on it is held.
func (g *Game) handleTouch(in input) {
	if len(in.Touches) > 0 {
		t := in.Touches[0]
		g.touchedCard = g.page.hitCard(t.X, t.Y+g.scrollY)
	}
	if !in.Touching && len(in.Touches) == 0 {
		g.touchedCard = -1
	}
}

func (g *Game) play(c sound.Cue) {
	if g.player != nil {
		g.player.Play(c)
	}
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.page = layoutPage(float64(w))
	g.cards.Resize(len(g.page.Cards))
	g.badges.Resize(len(g.page.Badges))
	g.reveal.SetTargets(g.page.revealTargets())
	if g.cfg.ReducedMotion {
		g.reveal.RevealAll()
	}
	g.scrollY = math.Min(g.scrollY, g.page.maxScroll(float64(h)))

	particleCount := 0
	if g.field != nil {
		g.field.Resize(float64(w), float64(h))
		particleCount = g.field.Len()
	}
	log.Printf("[GAME] Layout: %dx%d, particles=%d", w, h, particleCount)
}

func (g *Game) elapsed() time.Duration {
	return time.Duration(g.ticks) * time.Second / config.TPS
}

// typingElapsed is the time since the current name started typing.
func (g *Game) typingElapsed() time.Duration {
	return time.Duration(g.ticks-g.typeStart) * time.Second / config.TPS
}

// Layout records the window size; it takes effect at the next Update so a
// frame never sees a half-resized field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	g.pending = true
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
