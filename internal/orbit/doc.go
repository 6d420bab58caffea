// Package orbit implements the gravitational sandbox core: a single
// immovable anchor mass plus dynamically spawned satellites evolving under
// pairwise Newtonian attraction, one fixed logical step per rendered frame.
//
//   - [Body]: point mass with position, velocity, render color, and a
//     bounded trail of recent positions
//   - [State]: complete per-step snapshot of the body set
//   - [Engine]: force law, semi-implicit Euler integration, and the
//     circular-orbit velocity seeding used when a body is spawned
//   - [Store]: single-writer owner of the canonical state for frame drivers
//
// # Anchor Asymmetry
//
// The anchor exerts gravity on every satellite but is itself exempt from
// force accumulation and integration. This asymmetric approximation is the
// intended behavior, not true mutual N-body gravity.
//
// # Contact Guard
//
// A pair of bodies whose center distance is at or below the sum of their
// radii contributes no mutual force. The contribution is dropped rather
// than clamped or softened, which keeps every reachable state finite at
// the cost of slight momentum artifacts at close approach.
//
// # Example
//
//	eng := orbit.NewEngine(time.Now().UnixNano())
//	s := eng.Initialize(800, 600)
//	s = eng.SpawnAt(s, 500, 300)
//	for running {
//	    s = eng.Step(s, timeScale)
//	    render(s)
//	}
package orbit
