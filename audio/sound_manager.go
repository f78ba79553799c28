package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	dropLength     = 60 * time.Millisecond
	mergeLength    = 180 * time.Millisecond
	warningLength  = 150 * time.Millisecond
	gameOverLength = 900 * time.Millisecond

	// Merge chime for tier 0; each tier up is one semitone higher
	mergeBaseFreq = 523.25
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundManager plays the game's short cues through one shared mixer
// Cues are rendered into buffers during preload so playing one never synthesizes on the loop goroutine.
// Every Play method is a no-op until Initialize succeeds, so the game runs without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64

	drop     *beep.Buffer
	warning  *beep.Buffer
	gameOver *beep.Buffer
	merges   []*beep.Buffer
}

// NewSoundManager creates a manager for tierCount merge chimes
// volume is a base-2 gain; 0 leaves samples unchanged
func NewSoundManager(tierCount int, volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		merges: make([]*beep.Buffer, tierCount),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PreloadJobs returns one render job per cue; jobs may run concurrently
func (sm *SoundManager) PreloadJobs() []func() error {
	jobs := []func() error{
		func() error {
			buf, err := render(dropLength, NewCrunchGenerator(sampleRate, 0x5eed))
			sm.store(func() { sm.drop = buf })
			return err
		},
		func() error {
			buf, err := render(warningLength, NewBuzzGenerator(sampleRate, 440))
			sm.store(func() { sm.warning = buf })
			return err
		},
		func() error {
			buf, err := render(gameOverLength, NewSweepGenerator(sampleRate, 440, 110))
			sm.store(func() { sm.gameOver = buf })
			return err
		},
	}
	for tier := range sm.merges {
		tier := tier
		jobs = append(jobs, func() error {
			tone, err := generators.SineTone(sampleRate, MergeFrequency(tier))
			if err != nil {
				return fmt.Errorf("merge tone tier %d: %w", tier, err)
			}
			buf, err := render(mergeLength, &Envelope{Streamer: tone, Length: sampleRate.N(mergeLength)})
			sm.store(func() { sm.merges[tier] = buf })
			return err
		})
	}
	return jobs
}

// MergeFrequency returns the chime pitch for a tier
func MergeFrequency(tier int) float64 {
	return mergeBaseFreq * semitone(tier)
}

func (sm *SoundManager) store(set func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	set()
}

// render synthesizes length of s into a buffer
func render(length time.Duration, s beep.Streamer) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(sampleRate.N(length), s))
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("render cue: %w", err)
	}
	return buf, nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Clear()
	sm.initialized = false
}

// PlayDrop plays the release click
func (sm *SoundManager) PlayDrop() {
	sm.play(func() *beep.Buffer { return sm.drop })
}

// PlayMerge plays the chime for a merge that produced tier
func (sm *SoundManager) PlayMerge(tier int) {
	sm.play(func() *beep.Buffer {
		if len(sm.merges) == 0 {
			return nil
		}
		return sm.merges[((tier%len(sm.merges))+len(sm.merges))%len(sm.merges)]
	})
}

// PlayWarning plays the hazard warning beep
func (sm *SoundManager) PlayWarning() {
	sm.play(func() *beep.Buffer { return sm.warning })
}

// PlayGameOver plays the falling sting
func (sm *SoundManager) PlayGameOver() {
	sm.play(func() *beep.Buffer { return sm.gameOver })
}

func (sm *SoundManager) play(pick func() *beep.Buffer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf := pick()
	if buf == nil {
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if sm.volume != 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
