package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Cue timings.
const (
	JumpNoteDuration      = 45 * time.Millisecond
	ScoreNote1Duration    = 70 * time.Millisecond
	ScoreNote2Duration    = 160 * time.Millisecond
	CollisionDuration     = 280 * time.Millisecond
	cueAttack             = 5 * time.Millisecond
	collisionDecayPerSec  = 12.0
	collisionSubFrequency = 70.0
)

// Cue builds the finite sound for an event, or nil for events without one.
func Cue(e core.Event, sr beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventJump:
		return jumpCue(sr)
	case core.EventScore:
		return scoreCue(sr)
	case core.EventCollision:
		return collisionCue(sr)
	default:
		return nil
	}
}

// CueLength returns the number of samples Cue(e, sr) produces.
func CueLength(e core.Event, sr beep.SampleRate) int {
	switch e {
	case core.EventJump:
		return 2 * sr.N(JumpNoteDuration)
	case core.EventScore:
		return sr.N(ScoreNote1Duration) + sr.N(ScoreNote2Duration)
	case core.EventCollision:
		return sr.N(CollisionDuration)
	default:
		return 0
	}
}

// jumpCue is a short upward chirp.
func jumpCue(sr beep.SampleRate) beep.Streamer {
	return withVolume(beep.Seq(
		note(sr, 520, JumpNoteDuration),
		note(sr, 780, JumpNoteDuration),
	), 0.5)
}

// scoreCue is a two-note chime (B5, E6).
func scoreCue(sr beep.SampleRate) beep.Streamer {
	return withVolume(beep.Seq(
		note(sr, 987.77, ScoreNote1Duration),
		note(sr, 1318.51, ScoreNote2Duration),
	), 0.6)
}

// collisionCue is a low thud that dies away quickly.
func collisionCue(sr beep.SampleRate) beep.Streamer {
	thud := beep.Mix(
		withVolume(tone(sr, collisionSubFrequency, CollisionDuration), 0.7),
		withVolume(tone(sr, 2.1*collisionSubFrequency, CollisionDuration), 0.3),
	)
	return &decay{Streamer: thud, rate: float64(sr), perSec: collisionDecayPerSec}
}

// tone returns a sine of the given length, or silence if the generator
// rejects the frequency.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(sr, freq)
	if err != nil {
		s = generators.Silence(-1)
	}
	return beep.Take(sr.N(d), s)
}

// note is a tone with a short fade in and out to avoid clicks.
func note(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &fade{
		Streamer: tone(sr, freq, d),
		attack:   sr.N(cueAttack),
		total:    sr.N(d),
	}
}

// withVolume scales s by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// fade ramps the first and last attack samples of a finite stream.
type fade struct {
	beep.Streamer
	attack int
	total  int
	pos    int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 {
			if f.pos < f.attack {
				gain = float64(f.pos) / float64(f.attack)
			} else if rem := f.total - f.pos; rem < f.attack {
				gain = float64(rem) / float64(f.attack)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

// decay applies an exponential envelope.
type decay struct {
	beep.Streamer
	rate   float64
	perSec float64
	pos    int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-d.perSec * float64(d.pos) / d.rate)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}
