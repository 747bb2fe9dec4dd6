package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing a wave of the given frequency.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; vol 0 is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
	wave     Wave
}

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 40 * time.Millisecond
)

// cueNotes lists the notes played in sequence for every cue.
var cueNotes = map[Cue][]note{
	CueHideLevel: {{440, 80 * time.Millisecond, WaveSine}, {330, 120 * time.Millisecond, WaveSine}},
	CueMove:      {{660, 30 * time.Millisecond, WaveSine}},
	CueCollision: {{110, 120 * time.Millisecond, WaveSaw}},
	CueStar:      {{987.77, 70 * time.Millisecond, WaveSquare}, {1318.51, 140 * time.Millisecond, WaveSquare}},
	CueLife:      {{523.25, 80 * time.Millisecond, WaveSine}, {659.25, 80 * time.Millisecond, WaveSine}, {783.99, 120 * time.Millisecond, WaveSine}},
	CueDamage:    {{0, 180 * time.Millisecond, WaveNoise}},
	CueMoreTime:  {{600, 60 * time.Millisecond, WaveSine}, {900, 90 * time.Millisecond, WaveSine}},
	CueLessTime:  {{900, 60 * time.Millisecond, WaveSine}, {600, 90 * time.Millisecond, WaveSine}},
	CueElevator:  {{220, 100 * time.Millisecond, WaveSquare}, {440, 100 * time.Millisecond, WaveSquare}},
	CueMirror:    {{0, 250 * time.Millisecond, WaveNoise}},
	CueRotation:  {{180, 150 * time.Millisecond, WaveSaw}, {240, 150 * time.Millisecond, WaveSaw}},
	CueWin:       {{523.25, 100 * time.Millisecond, WaveSquare}, {659.25, 100 * time.Millisecond, WaveSquare}, {1046.5, 250 * time.Millisecond, WaveSquare}},
	CueLose:      {{392, 150 * time.Millisecond, WaveSaw}, {261.63, 300 * time.Millisecond, WaveSaw}},
}

// CueSound builds the streamer of one cue at the given volume (0..1).
// Unknown cues return nil.
func CueSound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, noteAttack, noteRelease, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}
