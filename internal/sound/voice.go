// Package sound synthesizes the short hover and click cues.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Waveform shapes supported by the sweep oscillator
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
)

// Cue identifies one of the interface sounds.
type Cue int

const (
	CuePop   Cue = iota // card hover
	CueSoft             // badge hover
	CueClick            // avatar click
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CuePop:
		return "pop"
	case CueSoft:
		return "soft"
	case CueClick:
		return "click"
	}
	return "unknown"
}

// Voice describes a single oscillator with exponential pitch and gain ramps.
type Voice struct {
	Wave      Waveform
	StartFreq float64
	EndFreq   float64
	Sweep     time.Duration // time to reach EndFreq
	StartGain float64
	EndGain   float64
	Decay     time.Duration // time to reach EndGain
	Length    time.Duration // hard stop
}

var voices = [cueCount]Voice{
	CuePop: {
		Wave: WaveSine, StartFreq: 800, EndFreq: 400, Sweep: 50 * time.Millisecond,
		StartGain: 0.08, EndGain: 0.001, Decay: 80 * time.Millisecond, Length: 80 * time.Millisecond,
	},
	CueSoft: {
		Wave: WaveSine, StartFreq: 600, EndFreq: 300, Sweep: 30 * time.Millisecond,
		StartGain: 0.05, EndGain: 0.001, Decay: 50 * time.Millisecond, Length: 50 * time.Millisecond,
	},
	CueClick: {
		Wave: WaveTriangle, StartFreq: 1000, EndFreq: 500, Sweep: 60 * time.Millisecond,
		StartGain: 0.1, EndGain: 0.001, Decay: 100 * time.Millisecond, Length: 100 * time.Millisecond,
	},
}

// VoiceFor returns the voice of a cue.
func VoiceFor(c Cue) (Voice, bool) {
	if c < 0 || c >= cueCount {
		return Voice{}, false
	}
	return voices[c], true
}

// sweep plays one Voice sample by sample
type sweep struct {
	voice    Voice
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewSweep creates a streamer rendering v at the given rate.
func NewSweep(v Voice, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		voice: v,
		rate:  rate,
		total: rate.N(v.Length),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		t := float64(s.position) / float64(s.rate)

		val := wave(s.voice.Wave, s.phase) * s.voice.GainAt(t)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.voice.FreqAt(t) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// FreqAt returns the oscillator frequency t seconds into the voice.
func (v Voice) FreqAt(t float64) float64 {
	return expRamp(v.StartFreq, v.EndFreq, t, v.Sweep.Seconds())
}

// GainAt returns the amplitude t seconds into the voice.
func (v Voice) GainAt(t float64) float64 {
	return expRamp(v.StartGain, v.EndGain, t, v.Decay.Seconds())
}

// expRamp moves from a to b exponentially over span seconds, then holds b.
// Both ends must be positive.
func expRamp(a, b, t, span float64) float64 {
	if span <= 0 || t >= span {
		return b
	}
	if t <= 0 {
		return a
	}
	return a * math.Pow(b/a, t/span)
}

// wave evaluates a unit waveform at phase in [0, 1).
func wave(w Waveform, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
