package sound

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const (
	SampleRate = beep.SampleRate(44100)
	tapSize    = 2048
)

// output is the audio device; the speaker package in production.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// Player mixes cues into a single speaker stream. Output stays locked until
// the first user gesture calls Unlock.
type Player struct {
	mu       sync.Mutex
	out      output
	mixer    *beep.Mixer
	tap      *Tap
	enabled  bool
	volume   float64 // 0-1
	unlocked bool
	failed   bool
}

func NewPlayer(enabled bool, volume int) *Player {
	return newPlayer(speakerOutput{}, enabled, volume)
}

func newPlayer(out output, enabled bool, volume int) *Player {
	mixer := &beep.Mixer{}
	p := &Player{
		out:     out,
		mixer:   mixer,
		tap:     NewTap(mixer, tapSize),
		enabled: enabled,
	}
	p.SetVolume(volume)
	return p
}

// Unlock opens the audio device. Only the first call does any work; a failed
// open leaves the player silent for the rest of the session.
func (p *Player) Unlock() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.unlocked || p.failed {
		return nil
	}
	if err := p.out.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		p.failed = true
		return errors.Wrap(err, "init speaker")
	}
	p.out.Play(p.tap)
	p.unlocked = true
	log.Printf("[SOUND] output unlocked at %d Hz", SampleRate)
	return nil
}

// Play queues a cue. It is silent until Unlock succeeded.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	ready := p.enabled && p.unlocked
	vol := p.volume
	p.mu.Unlock()
	if !ready {
		return
	}

	v, ok := VoiceFor(c)
	if !ok {
		log.Printf("[SOUND] unknown cue %d", c)
		return
	}
	s := withVolume(NewSweep(v, SampleRate), vol)

	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
}

func (p *Player) SetVolume(volume int) {
	v := float64(volume) / 100
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

func (p *Player) Unlocked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unlocked
}

// Level is the loudness of what was just played, used for visual feedback.
func (p *Player) Level() float64 {
	return p.tap.Level(tapSize / 4)
}

// withVolume scales s; a zero volume is silent since Log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
