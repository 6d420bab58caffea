package orbit

import (
	"math"
	"testing"
)

func TestInitializeSingleAnchor(t *testing.T) {
	e := NewEngine(1)
	s := e.Initialize(800, 600)

	if len(s.Bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(s.Bodies))
	}

	a := s.Bodies[0]
	if !a.Anchor {
		t.Error("initial body should be the anchor")
	}
	if a.Pos.X != 400 || a.Pos.Y != 300 {
		t.Errorf("expected anchor at viewport center (400,300), got (%f,%f)", a.Pos.X, a.Pos.Y)
	}
	if a.Vel.X != 0 || a.Vel.Y != 0 {
		t.Error("anchor should start with zero velocity")
	}
	if len(a.Trail) != 0 {
		t.Errorf("anchor should start with empty trail, got %d entries", len(a.Trail))
	}
}

func TestResetReplacesBodySet(t *testing.T) {
	e := NewEngine(1)
	s := e.Initialize(800, 600)
	s = e.SpawnAt(s, 500, 300)
	s = e.SpawnAt(s, 400, 450)

	s = e.Reset(1024, 768)

	if len(s.Bodies) != 1 {
		t.Fatalf("reset should leave a single anchor, got %d bodies", len(s.Bodies))
	}
	if s.Bodies[0].Pos.X != 512 || s.Bodies[0].Pos.Y != 384 {
		t.Errorf("reset anchor should sit at new center, got (%f,%f)", s.Bodies[0].Pos.X, s.Bodies[0].Pos.Y)
	}
}

func TestAnchorInvariance(t *testing.T) {
	e := NewEngine(42)
	s := e.Initialize(800, 600)
	s = e.SpawnAt(s, 550, 300)
	s = e.SpawnAt(s, 400, 480)

	anchorPos := s.Bodies[s.Anchor()].Pos

	for i := 0; i < 200; i++ {
		s = e.Step(s, 1.0)
	}

	a := s.Bodies[s.Anchor()]
	if a.Pos != anchorPos {
		t.Errorf("anchor moved: expected %v, got %v", anchorPos, a.Pos)
	}
	if a.Vel.X != 0 || a.Vel.Y != 0 {
		t.Errorf("anchor gained velocity: %v", a.Vel)
	}
	if len(a.Trail) != e.TailLength {
		t.Errorf("expected anchor trail at cap %d, got %d", e.TailLength, len(a.Trail))
	}
	for _, p := range a.Trail {
		if p != anchorPos {
			t.Fatalf("anchor trail should be degenerate at %v, found %v", anchorPos, p)
		}
	}
}

func TestTrailBoundAndOrder(t *testing.T) {
	e := NewEngine(7)
	s := e.Initialize(800, 600)
	s = e.SpawnAt(s, 520, 300)

	var want []Vec2
	for i := 0; i < e.TailLength+50; i++ {
		s = e.Step(s, 1.0)
		want = append(want, s.Bodies[1].Pos)
	}

	trail := s.Bodies[1].Trail
	if len(trail) != e.TailLength {
		t.Fatalf("expected trail capped at %d, got %d", e.TailLength, len(trail))
	}

	// Exactly the most recent TailLength positions, oldest first.
	want = want[len(want)-e.TailLength:]
	for i := range trail {
		if trail[i] != want[i] {
			t.Fatalf("trail[%d]: expected %v, got %v", i, want[i], trail[i])
		}
	}
}

func TestTrailBelowCap(t *testing.T) {
	e := NewEngine(7)
	s := e.Initialize(800, 600)
	s = e.SpawnAt(s, 520, 300)

	for i := 0; i < 10; i++ {
		s = e.Step(s, 1.0)
	}

	if len(s.Bodies[1].Trail) != 10 {
		t.Errorf("expected trail length 10 after 10 steps, got %d", len(s.Bodies[1].Trail))
	}
}

func TestContactGuard(t *testing.T) {
	e := NewEngine(1)

	pair := func(dist float64) State {
		return State{
			Bodies: []Body{
				{Pos: Vec2{0, 0}, Mass: 100, Radius: 5},
				{Pos: Vec2{dist, 0}, Mass: 100, Radius: 5},
			},
			Width:  800,
			Height: 600,
		}
	}

	// Centers closer than the radius sum: no mutual force.
	touching := e.Step(pair(8), 1.0)
	for i, b := range touching.Bodies {
		if b.Vel.X != 0 || b.Vel.Y != 0 {
			t.Errorf("body %d accelerated inside contact distance: %v", i, b.Vel)
		}
	}

	// Distance exactly at the radius sum is still excluded.
	exact := e.Step(pair(10), 1.0)
	for i, b := range exact.Bodies {
		if b.Vel.X != 0 || b.Vel.Y != 0 {
			t.Errorf("body %d accelerated at exact contact distance: %v", i, b.Vel)
		}
	}

	// Just beyond contact the pair attracts.
	apart := e.Step(pair(11), 1.0)
	if apart.Bodies[0].Vel.X <= 0 {
		t.Errorf("expected body 0 pulled toward +x, got vx=%f", apart.Bodies[0].Vel.X)
	}
	if apart.Bodies[1].Vel.X >= 0 {
		t.Errorf("expected body 1 pulled toward -x, got vx=%f", apart.Bodies[1].Vel.X)
	}
}

func TestContactGuardMagnitudeVariesContinuously(t *testing.T) {
	e := NewEngine(1)

	accelAt := func(dist float64) float64 {
		s := State{
			Bodies: []Body{
				{Pos: Vec2{0, 0}, Mass: 100, Radius: 5},
				{Pos: Vec2{dist, 0}, Mass: 100, Radius: 5},
			},
		}
		return e.accelerationOn(s.Bodies, 0).Length()
	}

	a11 := accelAt(11)
	a12 := accelAt(12)
	if a11 <= a12 {
		t.Errorf("acceleration should fall with distance: a(11)=%f a(12)=%f", a11, a12)
	}
	if a12 <= 0 {
		t.Errorf("expected nonzero acceleration beyond contact, got %f", a12)
	}
}

func TestSeedOrbitVelocity(t *testing.T) {
	e := NewEngine(1)
	anchor := Body{Pos: Vec2{0, 0}, Mass: 500, Radius: 10, Anchor: true}

	d := 200.0
	vel, err := e.SeedOrbit(anchor, Vec2{d, 0})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	wantSpeed := math.Sqrt(e.G*anchor.Mass/d) * e.OrbitFactor
	if math.Abs(vel.Length()-wantSpeed) > 1e-9 {
		t.Errorf("expected speed %f, got %f", wantSpeed, vel.Length())
	}

	// Perpendicular to the radius vector, rotated +90°.
	if math.Abs(vel.X) > 1e-9 {
		t.Errorf("expected zero radial component, got vx=%f", vel.X)
	}
	if vel.Y <= 0 {
		t.Errorf("expected +90° rotation (vy>0), got vy=%f", vel.Y)
	}
}

func TestSeedOrbitDegenerate(t *testing.T) {
	e := NewEngine(1)
	anchor := Body{Pos: Vec2{400, 300}, Mass: 1000, Radius: 12, Anchor: true}

	if _, err := e.SeedOrbit(anchor, Vec2{400, 300}); err != ErrDegenerateSpawn {
		t.Errorf("expected ErrDegenerateSpawn, got %v", err)
	}
}

func TestSpawnAtDegenerateIsNoop(t *testing.T) {
	e := NewEngine(1)
	s := e.Initialize(800, 600)

	s2 := e.SpawnAt(s, 400, 300)
	if len(s2.Bodies) != len(s.Bodies) {
		t.Errorf("degenerate spawn should leave body count unchanged: %d -> %d", len(s.Bodies), len(s2.Bodies))
	}
}

func TestSpawnAtRandomization(t *testing.T) {
	e := NewEngine(3)
	s := e.Initialize(800, 600)

	for i := 0; i < 20; i++ {
		s = e.SpawnAt(s, 400+float64(50+i*10), 300)
	}

	for _, b := range s.Bodies[1:] {
		if b.Mass < e.MinMass || b.Mass >= e.MaxMass {
			t.Errorf("mass %f outside [%f,%f)", b.Mass, e.MinMass, e.MaxMass)
		}
		if b.Radius < e.MinRadius || b.Radius >= e.MaxRadius {
			t.Errorf("radius %f outside [%f,%f)", b.Radius, e.MinRadius, e.MaxRadius)
		}
		if b.Color == "" || b.Color == AnchorColor {
			t.Errorf("satellite should get a distinct palette color, got %q", b.Color)
		}
	}
}

func TestSpawnDeterministicForSeed(t *testing.T) {
	a := NewEngine(99)
	b := NewEngine(99)

	sa := a.SpawnAt(a.Initialize(800, 600), 520, 340)
	sb := b.SpawnAt(b.Initialize(800, 600), 520, 340)

	ba, bb := sa.Bodies[1], sb.Bodies[1]
	if ba.Mass != bb.Mass || ba.Radius != bb.Radius || ba.Color != bb.Color {
		t.Errorf("same seed should give identical satellites: %+v vs %+v", ba, bb)
	}
	if ba.Vel != bb.Vel {
		t.Errorf("seeded velocity should not depend on randomization: %v vs %v", ba.Vel, bb.Vel)
	}
}

func TestTimeScaleLinearity(t *testing.T) {
	// Far from the anchor the acceleration is near-constant over one
	// step, so halving the time scale should roughly halve the position
	// delta. Not exact: the new velocity feeds into the position update.
	mk := func() State {
		return State{
			Bodies: []Body{
				{Pos: Vec2{400, 300}, Mass: 1000, Radius: 12, Anchor: true},
				{Pos: Vec2{800, 300}, Vel: Vec2{0, 20}, Mass: 5, Radius: 4},
			},
			Width:  800,
			Height: 600,
		}
	}
	e := NewEngine(1)

	full := e.Step(mk(), 1.0).Bodies[1].Pos.Sub(mk().Bodies[1].Pos).Length()
	half := e.Step(mk(), 0.5).Bodies[1].Pos.Sub(mk().Bodies[1].Pos).Length()

	ratio := full / half
	if math.Abs(ratio-2.0) > 0.05 {
		t.Errorf("expected delta ratio ~2 for halved time scale, got %f", ratio)
	}
}

func TestTimeScaleClamped(t *testing.T) {
	e := NewEngine(1)
	s := State{
		Bodies: []Body{
			{Pos: Vec2{400, 300}, Mass: 1000, Radius: 12, Anchor: true},
			{Pos: Vec2{800, 300}, Vel: Vec2{0, 20}, Mass: 5, Radius: 4},
		},
	}

	over := e.Step(s, 50.0).Bodies[1].Pos
	max := e.Step(s, e.MaxTimeScale).Bodies[1].Pos
	if over != max {
		t.Errorf("time scale above bound should clamp to %f: %v vs %v", e.MaxTimeScale, over, max)
	}

	under := e.Step(s, 0.0).Bodies[1].Pos
	min := e.Step(s, e.MinTimeScale).Bodies[1].Pos
	if under != min {
		t.Errorf("time scale below bound should clamp to %f: %v vs %v", e.MinTimeScale, under, min)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	e := NewEngine(1)
	s := e.Initialize(800, 600)
	s = e.SpawnAt(s, 500, 300)

	posBefore := s.Bodies[1].Pos
	trailBefore := len(s.Bodies[1].Trail)

	_ = e.Step(s, 1.0)

	if s.Bodies[1].Pos != posBefore {
		t.Error("Step mutated the input state's positions")
	}
	if len(s.Bodies[1].Trail) != trailBefore {
		t.Error("Step mutated the input state's trails")
	}
}

func TestEndToEndScenario(t *testing.T) {
	e := NewEngine(1)
	s := e.Initialize(800, 600)

	// Anchor mass 1000 at (400,300), click at (500,300): d=100, so the
	// seeded speed is sqrt(100*1000/100)*0.8 = 8*sqrt(10) and the
	// direction is straight +y in screen coordinates.
	s = e.SpawnAt(s, 500, 300)
	if len(s.Bodies) != 2 {
		t.Fatalf("expected 2 bodies after spawn, got %d", len(s.Bodies))
	}

	sat := s.Bodies[1]
	wantSpeed := 8 * math.Sqrt(10)
	if math.Abs(sat.Vel.Length()-wantSpeed) > 1e-9 {
		t.Errorf("expected seeded speed %f, got %f", wantSpeed, sat.Vel.Length())
	}
	if math.Abs(sat.Vel.X) > 1e-9 || sat.Vel.Y <= 0 {
		t.Errorf("expected velocity along +y, got %v", sat.Vel)
	}

	vel := sat.Vel
	s = e.Step(s, 1.0)
	moved := s.Bodies[1].Pos.Sub(Vec2{500, 300})

	// Position delta is velocity times dt plus a small inward correction
	// from the acceleration picked up during the step.
	drift := moved.Sub(vel.Scale(e.BaseTimeStep)).Length()
	if drift > 0.01 {
		t.Errorf("position delta deviates from v*dt by %f", drift)
	}
	if s.Bodies[1].Pos.X >= 500 {
		t.Errorf("expected inward (-x) correction, got x=%f", s.Bodies[1].Pos.X)
	}
}

func TestLongRunStaysFinite(t *testing.T) {
	e := NewEngine(5)
	s := e.Initialize(800, 600)
	for i := 0; i < 8; i++ {
		s = e.SpawnAt(s, 400+float64(30+i*25), 300+float64(i*13))
	}

	for i := 0; i < 2000; i++ {
		s = e.Step(s, 1.0)
		if !s.IsFinite() {
			t.Fatalf("non-finite state at step %d", i)
		}
	}
}
