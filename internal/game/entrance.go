package game

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// spring constants for entrance and reveal easing
const (
	easeFrequency = 7.0
	easeDamping   = 1.0 // critically damped, no overshoot
)

// easer drives a value from 0 toward 1 once triggered.
type easer struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	active bool
}

func newEaser() easer {
	return easer{spring: harmonica.NewSpring(harmonica.FPS(config.TPS), easeFrequency, easeDamping)}
}

func (e *easer) update() {
	if !e.active {
		return
	}
	e.pos, e.vel = e.spring.Update(e.pos, e.vel, 1)
}

func (e *easer) progress() float64 { return clamp01(e.pos) }

// finish jumps straight to the end state.
func (e *easer) finish() {
	e.active = true
	e.pos, e.vel = 1, 0
}

// Entrance staggers the appearance of a row of items: item i starts easing in
// at Base + i*Step.
type Entrance struct {
	Base  time.Duration
	Step  time.Duration
	items []easer
}

func NewEntrance(n int, base, step time.Duration) *Entrance {
	e := &Entrance{Base: base, Step: step}
	e.Resize(n)
	return e
}

// Resize keeps existing progress and adds fresh items.
func (e *Entrance) Resize(n int) {
	for len(e.items) < n {
		e.items = append(e.items, newEaser())
	}
	e.items = e.items[:n]
}

func (e *Entrance) Update(elapsed time.Duration) {
	for i := range e.items {
		if elapsed >= e.Start(i) {
			e.items[i].active = true
		}
		e.items[i].update()
	}
}

func (e *Entrance) Start(i int) time.Duration {
	return e.Base + time.Duration(i)*e.Step
}

// Progress is 0 before the item starts and settles at 1.
func (e *Entrance) Progress(i int) float64 {
	if i < 0 || i >= len(e.items) {
		return 1
	}
	return e.items[i].progress()
}

func (e *Entrance) Len() int { return len(e.items) }
