package orbit

import (
	"math"
	"math/rand"
)

const (
	// DefaultG is a tuning constant for visually pleasing orbital
	// periods at the default scale, not a physical unit.
	DefaultG            = 100.0
	DefaultBaseTimeStep = 0.02
	DefaultTailLength   = 100

	DefaultAnchorMass   = 1000.0
	DefaultAnchorRadius = 12.0

	DefaultMinTimeScale = 0.1
	DefaultMaxTimeScale = 5.0

	// OrbitFactor under-speeds seeded satellites toward a stable
	// elliptical rather than marginal circular orbit.
	DefaultOrbitFactor = 0.8

	DefaultMinMass   = 1.0
	DefaultMaxMass   = 10.0
	DefaultMinRadius = 3.0
	DefaultMaxRadius = 8.0
)

// Engine advances a body State by one logical tick per Step call and seeds
// initial conditions for spawned satellites. All operations are pure with
// respect to their State argument.
type Engine struct {
	G            float64
	BaseTimeStep float64
	TailLength   int

	AnchorMass   float64
	AnchorRadius float64

	MinTimeScale float64
	MaxTimeScale float64

	OrbitFactor float64
	MinMass     float64
	MaxMass     float64
	MinRadius   float64
	MaxRadius   float64

	rng     *rand.Rand
	palette *Palette
}

// NewEngine creates an engine with the default constants and a randomness
// source seeded with seed, so spawn randomization is reproducible.
func NewEngine(seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		G:            DefaultG,
		BaseTimeStep: DefaultBaseTimeStep,
		TailLength:   DefaultTailLength,
		AnchorMass:   DefaultAnchorMass,
		AnchorRadius: DefaultAnchorRadius,
		MinTimeScale: DefaultMinTimeScale,
		MaxTimeScale: DefaultMaxTimeScale,
		OrbitFactor:  DefaultOrbitFactor,
		MinMass:      DefaultMinMass,
		MaxMass:      DefaultMaxMass,
		MinRadius:    DefaultMinRadius,
		MaxRadius:    DefaultMaxRadius,
		rng:          rng,
		palette:      NewPalette(rng),
	}
}

// Initialize produces the single-anchor starting state centered in the
// given viewport: zero velocity, empty trail.
func (e *Engine) Initialize(width, height float64) State {
	return State{
		Bodies: []Body{{
			Pos:    Vec2{width / 2, height / 2},
			Mass:   e.AnchorMass,
			Radius: e.AnchorRadius,
			Color:  AnchorColor,
			Anchor: true,
		}},
		Width:  width,
		Height: height,
	}
}

// Reset replaces the entire body set with a fresh single-anchor state.
func (e *Engine) Reset(width, height float64) State {
	return e.Initialize(width, height)
}

// Step advances the state by one logical tick: pairwise gravitational
// acceleration with the contact guard, semi-implicit Euler integration at
// dt = BaseTimeStep * timeScale, and one trail append per body. The anchor
// is exempt from forces and integration; it contributes gravity to every
// other body but only its trail grows. Accelerations are computed from the
// pre-step snapshot so all bodies see the same generation. O(N²).
func (e *Engine) Step(s State, timeScale float64) State {
	dt := e.BaseTimeStep * e.clampTimeScale(timeScale)

	next := s.Clone()
	for i := range next.Bodies {
		b := &next.Bodies[i]
		if b.Anchor {
			b.appendTrail(b.Pos, e.TailLength)
			continue
		}
		acc := e.accelerationOn(s.Bodies, i)
		b.Vel = b.Vel.Add(acc.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.appendTrail(b.Pos, e.TailLength)
	}
	return next
}

// accelerationOn accumulates the gravitational acceleration on bodies[i]
// from every other body. A pair closer than the sum of its radii
// contributes nothing: the contact guard that avoids the force singularity
// and stops attraction once bodies visually touch. The contribution is
// dropped, not clamped; that is the documented behavior, not a defect.
func (e *Engine) accelerationOn(bodies []Body, i int) Vec2 {
	var acc Vec2
	bi := bodies[i]
	for j := range bodies {
		if j == i {
			continue
		}
		bj := bodies[j]
		delta := bj.Pos.Sub(bi.Pos)
		dist := delta.Length()
		if dist <= bi.Radius+bj.Radius {
			continue
		}
		f := e.G * bi.Mass * bj.Mass / (dist * dist)
		acc = acc.Add(delta.Scale(f / (dist * bi.Mass)))
	}
	return acc
}

// SeedOrbit computes the tangential velocity placing a body spawned at
// click on an approximately circular orbit around the anchor:
// speed sqrt(G*M/d) scaled by OrbitFactor, direction rotated +90° from
// the radius vector. Returns ErrDegenerateSpawn when click coincides with
// the anchor center, where the speed is undefined.
func (e *Engine) SeedOrbit(anchor Body, click Vec2) (Vec2, error) {
	delta := click.Sub(anchor.Pos)
	dist := delta.Length()
	if dist == 0 {
		return Vec2{}, ErrDegenerateSpawn
	}
	speed := math.Sqrt(e.G*anchor.Mass/dist) * e.OrbitFactor
	angle := delta.Angle() + math.Pi/2
	return FromAngle(angle, speed), nil
}

// SpawnAt appends a new satellite at the click point with an orbit-seeded
// velocity, randomized mass and radius, and a palette color. The input
// state is returned unchanged on a degenerate click (exactly on the anchor
// center) or when the state has no anchor.
func (e *Engine) SpawnAt(s State, x, y float64) State {
	ai := s.Anchor()
	if ai < 0 {
		return s
	}
	click := Vec2{x, y}
	vel, err := e.SeedOrbit(s.Bodies[ai], click)
	if err != nil {
		return s
	}

	next := s.Clone()
	next.Bodies = append(next.Bodies, Body{
		Pos:    click,
		Vel:    vel,
		Mass:   e.randRange(e.MinMass, e.MaxMass),
		Radius: e.randRange(e.MinRadius, e.MaxRadius),
		Color:  e.palette.Next(),
	})
	return next
}

func (e *Engine) clampTimeScale(ts float64) float64 {
	if ts < e.MinTimeScale {
		return e.MinTimeScale
	}
	if ts > e.MaxTimeScale {
		return e.MaxTimeScale
	}
	return ts
}

func (e *Engine) randRange(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}
