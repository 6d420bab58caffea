package orbit

// Body is a point mass in the simulation. Exactly one body per State has
// Anchor set: the dominant mass that exerts gravity but never moves.
type Body struct {
	Pos    Vec2    `json:"pos"`
	Vel    Vec2    `json:"vel"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	Anchor bool    `json:"anchor,omitempty"`

	// Trail holds recent positions, oldest first, capped at the engine's
	// tail length. Render-only: it has no effect on the dynamics.
	Trail []Vec2 `json:"trail,omitempty"`
}

// appendTrail pushes p onto the trail, evicting the oldest entry once the
// trail exceeds limit.
func (b *Body) appendTrail(p Vec2, limit int) {
	b.Trail = append(b.Trail, p)
	if len(b.Trail) > limit {
		b.Trail = b.Trail[1:]
	}
}

// Valid reports whether the body satisfies the store's preconditions:
// positive mass and radius, finite position and velocity.
func (b Body) Valid() bool {
	return b.Mass > 0 && b.Radius > 0 && b.Pos.IsFinite() && b.Vel.IsFinite()
}

func (b Body) clone() Body {
	c := b
	if b.Trail != nil {
		c.Trail = make([]Vec2, len(b.Trail))
		copy(c.Trail, b.Trail)
	}
	return c
}
