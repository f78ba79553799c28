package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// semitone returns the equal-temperament ratio for n semitones
func semitone(n int) float64 {
	return math.Pow(2, float64(n)/12)
}

// Envelope applies a short attack and exponential release over Length samples
type Envelope struct {
	Streamer beep.Streamer
	Length   int
	pos      int
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	attack := float64(e.Length) * 0.05
	for i := 0; i < n; i++ {
		p := float64(e.pos)
		gain := math.Exp(-4 * p / float64(e.Length))
		if p < attack {
			gain *= p / attack
		}
		samples[i][0] *= 0.3 * gain
		samples[i][1] *= 0.3 * gain
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.Streamer.Err()
}

// BuzzGenerator generates a soft square-ish beep
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a square-ish edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// CrunchGenerator generates a short noisy click, the cookie leaving the hand
type CrunchGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrunchGenerator creates a click generator; a fixed seed gives the same click every time
func NewCrunchGenerator(sr beep.SampleRate, seed int64) *CrunchGenerator {
	return &CrunchGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *CrunchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, fast decay
		envelope := math.Exp(-t * 60)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thump := 0.4 * math.Sin(2*math.Pi*160*t)
		sample := envelope * (0.3*noise + thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrunchGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one frequency to another over one second
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep generator
func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{
		sr:   sr,
		from: from,
		to:   to,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t, 1.0)

		// Exponential glide sounds even across octaves
		freq := g.from * math.Pow(g.to/g.from, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		amplitude := 0.2 * (1 - progress*0.8)
		sample := amplitude * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
