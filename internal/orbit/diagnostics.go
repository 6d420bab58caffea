package orbit

import "math"

// Conserved-quantity diagnostics over a snapshot. With the immovable
// anchor and the contact guard these are not exactly conserved; they are
// observability values for the live view and run metrics, not inputs to
// the integration.

// Energy returns kinetic plus pairwise gravitational potential energy.
func (e *Engine) Energy(s State) float64 {
	ke := 0.0
	pe := 0.0
	n := len(s.Bodies)
	for i := 0; i < n; i++ {
		bi := s.Bodies[i]
		ke += 0.5 * bi.Mass * bi.Vel.LengthSquared()
		for j := i + 1; j < n; j++ {
			bj := s.Bodies[j]
			r := bi.Pos.Distance(bj.Pos)
			if r == 0 {
				continue
			}
			pe -= e.G * bi.Mass * bj.Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum of the non-anchor bodies.
func (e *Engine) Momentum(s State) Vec2 {
	var p Vec2
	for _, b := range s.Bodies {
		if b.Anchor {
			continue
		}
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum of the non-anchor
// bodies about the anchor position (about the origin if there is none).
func (e *Engine) AngularMomentum(s State) float64 {
	var center Vec2
	if ai := s.Anchor(); ai >= 0 {
		center = s.Bodies[ai].Pos
	}
	L := 0.0
	for _, b := range s.Bodies {
		if b.Anchor {
			continue
		}
		r := b.Pos.Sub(center)
		L += b.Mass * (r.X*b.Vel.Y - r.Y*b.Vel.X)
	}
	return L
}

// MeanOrbitalRadius returns the average distance of satellites from the
// anchor, or NaN for a state with no satellites.
func (e *Engine) MeanOrbitalRadius(s State) float64 {
	ai := s.Anchor()
	if ai < 0 || len(s.Bodies) < 2 {
		return math.NaN()
	}
	sum := 0.0
	count := 0
	for i, b := range s.Bodies {
		if i == ai {
			continue
		}
		sum += b.Pos.Distance(s.Bodies[ai].Pos)
		count++
	}
	return sum / float64(count)
}
