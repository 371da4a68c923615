package game

import "github.com/iburimskiy/portfolio-backdrop/internal/config"

// revealLift is how far a hidden section sits below its final position
const revealLift = 30.0

// Reveal fades sections in the first time they scroll into view. Once a
// target is revealed it is no longer observed.
type Reveal struct {
	targets  []rect
	revealed []bool
	easers   []easer
}

func NewReveal(targets []rect) *Reveal {
	r := &Reveal{}
	r.SetTargets(targets)
	return r
}

// SetTargets updates target geometry after a relayout, keeping reveal state.
func (r *Reveal) SetTargets(targets []rect) {
	r.targets = append(r.targets[:0], targets...)
	for len(r.revealed) < len(targets) {
		r.revealed = append(r.revealed, false)
		r.easers = append(r.easers, newEaser())
	}
	r.revealed = r.revealed[:len(targets)]
	r.easers = r.easers[:len(targets)]
}

// RevealAll marks every target revealed with no animation.
func (r *Reveal) RevealAll() {
	for i := range r.targets {
		r.revealed[i] = true
		r.easers[i].finish()
	}
}

// Observe checks visibility against the viewport scrolled to scrollY and
// advances the fade-in of revealed targets.
func (r *Reveal) Observe(scrollY, viewportH float64) {
	top := scrollY
	bottom := scrollY + viewportH - config.RevealBottomMargin
	for i, t := range r.targets {
		if !r.revealed[i] && intersectionRatio(t, top, bottom) >= config.RevealThreshold {
			r.revealed[i] = true
			r.easers[i].active = true
		}
		r.easers[i].update()
	}
}

// intersectionRatio is the share of t's height inside [top, bottom).
func intersectionRatio(t rect, top, bottom float64) float64 {
	if t.H <= 0 || bottom <= top {
		return 0
	}
	lo := max(t.Y, top)
	hi := min(t.Y+t.H, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / t.H
}

func (r *Reveal) Revealed(i int) bool {
	return i >= 0 && i < len(r.revealed) && r.revealed[i]
}

// Progress is the fade-in amount of target i in [0, 1].
func (r *Reveal) Progress(i int) float64 {
	if i < 0 || i >= len(r.easers) {
		return 1
	}
	return r.easers[i].progress()
}
