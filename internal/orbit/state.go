package orbit

// State is one complete per-step snapshot of the simulation: the ordered
// body set plus the viewport it was initialized for. Step and SpawnAt
// never mutate their input State; they return a fresh one, so a renderer
// holding the previous snapshot never observes mid-step values.
type State struct {
	Bodies []Body  `json:"bodies"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s State) Clone() State {
	c := State{
		Bodies: make([]Body, len(s.Bodies)),
		Width:  s.Width,
		Height: s.Height,
	}
	for i, b := range s.Bodies {
		c.Bodies[i] = b.clone()
	}
	return c
}

// Anchor returns the index of the anchor body, or -1 if the state is
// empty or malformed.
func (s State) Anchor() int {
	for i, b := range s.Bodies {
		if b.Anchor {
			return i
		}
	}
	return -1
}

// IsFinite reports whether every position and velocity in the state is
// finite. The contact guard keeps this true through any number of steps;
// tests assert it after long runs.
func (s State) IsFinite() bool {
	for _, b := range s.Bodies {
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			return false
		}
	}
	return true
}
