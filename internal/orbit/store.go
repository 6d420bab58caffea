package orbit

// Store owns the canonical body State for a frame driver (the live view or
// the headless runner). Single-writer discipline: one goroutine calls the
// mutating methods, renderers consume complete per-step snapshots. The
// body set has no capacity limit; per-step cost grows with the square of
// the count, which bounds the usable body count for a frame budget.
type Store struct {
	engine *Engine
	state  State
}

// NewStore initializes a store with the single-anchor state for the given
// viewport.
func NewStore(engine *Engine, width, height float64) *Store {
	return &Store{
		engine: engine,
		state:  engine.Initialize(width, height),
	}
}

// Reset replaces the entire collection with a single anchor centered in
// the (possibly resized) viewport.
func (s *Store) Reset(width, height float64) {
	s.state = s.engine.Reset(width, height)
}

// Step advances the store by one logical tick.
func (s *Store) Step(timeScale float64) {
	s.state = s.engine.Step(s.state, timeScale)
}

// SpawnAt seeds and appends a satellite at the click point. Returns false
// when the spawn was rejected (degenerate click on the anchor center).
func (s *Store) SpawnAt(x, y float64) bool {
	before := len(s.state.Bodies)
	s.state = s.engine.SpawnAt(s.state, x, y)
	return len(s.state.Bodies) > before
}

// Spawn appends a caller-built satellite body. The body must have positive
// mass and radius and finite position and velocity.
func (s *Store) Spawn(b Body) error {
	if !b.Valid() {
		return ErrInvalidBody
	}
	next := s.state.Clone()
	next.Bodies = append(next.Bodies, b.clone())
	s.state = next
	return nil
}

// Snapshot returns a deep copy of the current state for a renderer.
func (s *Store) Snapshot() State {
	return s.state.Clone()
}

// Len returns the live body count.
func (s *Store) Len() int {
	return len(s.state.Bodies)
}
