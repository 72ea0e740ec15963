// Package audio turns session events into short synthesized sound cues.
//
// Cues are generated on the fly with beep oscillators, so the game ships no
// sound files. A Player that failed to open the speaker stays silent; the
// game never depends on sound.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// VolumeStep is the increment used by the volume actions.
const VolumeStep = 0.1

const volumeSteps = 10 // 1 / VolumeStep

// DefaultVolume is the initial effect volume.
const DefaultVolume = 0.5

// Player plays a cue for each session event. It implements core.Listener.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
	ready  bool
	logger *log.Logger
}

// New creates a silent player. Call Init to open the speaker.
func New(volume float64, muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: normalizeVolume(volume),
		muted:  muted,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer. On error the player stays
// usable and silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// OnEvent plays the cue for e.
func (p *Player) OnEvent(e core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted || p.volume <= 0 {
		return
	}
	cue := Cue(e, SampleRate)
	if cue == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(cue, p.volume))
	speaker.Unlock()
}

// HandleAction applies volume and mute actions. It reports whether the
// action was one of them.
func (p *Player) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionVolumeUp:
		p.SetVolume(p.Volume() + VolumeStep)
	case core.ActionVolumeDown:
		p.SetVolume(p.Volume() - VolumeStep)
	case core.ActionMute:
		p.ToggleMute()
	default:
		return false
	}
	p.logger.Debug("audio settings changed", "volume", p.Volume(), "muted", p.Muted())
	return true
}

// Volume returns the effect volume in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets the effect volume, clamped to [0, 1] and rounded to a
// whole step.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = normalizeVolume(v)
}

// ToggleMute flips mute and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether sound is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func normalizeVolume(v float64) float64 {
	v = core.ClampF(v, 0, 1)
	return math.Round(v*volumeSteps) / volumeSteps
}
