// Package audio triggers the short sound cues of the game. Playing a cue is
// fire-and-forget: callers never wait for a sound to finish and never see a
// playback failure.
package audio

import "sync"

// Cue identifies one sound event.
type Cue int

const (
	CueHideLevel Cue = iota
	CueMove
	CueCollision
	CueStar
	CueLife
	CueDamage
	CueMoreTime
	CueLessTime
	CueElevator
	CueMirror
	CueRotation
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueHideLevel:
		return "hide-level"
	case CueMove:
		return "move"
	case CueCollision:
		return "collision"
	case CueStar:
		return "star"
	case CueLife:
		return "life"
	case CueDamage:
		return "damage"
	case CueMoreTime:
		return "more-time"
	case CueLessTime:
		return "less-time"
	case CueElevator:
		return "elevator"
	case CueMirror:
		return "mirror"
	case CueRotation:
		return "rotation"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Player plays cues.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) Play(Cue) {}

// Recorder is a Player that remembers every cue it was asked to play.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

// Cues returns the recorded cues in play order.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}
