package spawn

import "sync"

// Outcome summarizes one State.Apply call
type Outcome struct {
	Previous float64 // multiplier in effect before the call
	Applied  float64 // multiplier in effect after the call
	Relative float64 // factor the chances were actually scaled by
	Changed  int
}

// State owns the last applied multiplier.
// It starts neutral (1) and is replaced on every Apply. The read-modify-write is
// serialized so overlapping triggers cannot scale from a stale multiplier.
type State struct {
	mu   sync.Mutex
	last float64
}

// NewState creates a State in the neutral position
func NewState() *State {
	return &State{last: NeutralMultiplier}
}

// Last returns the multiplier currently applied to the world
func (s *State) Last() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Apply rescales locations to multiplier relative to the last applied one
func (s *State) Apply(locations []*Location, multiplier float64, rules Rules, onChange ChangeFunc) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Outcome{
		Previous: s.last,
		Applied:  multiplier,
	}
	out.Relative, out.Changed = rescale(locations, multiplier, s.last, rules, onChange)
	s.last = multiplier

	return out
}
