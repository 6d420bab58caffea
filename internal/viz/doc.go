// Package viz renders orbit states in the terminal.
//
// The interactive view is a Bubble Tea program driving the simulation one
// step per frame tick:
//
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per cell)
//   - [Projection]: simulation-space to canvas mapping, and back for
//     mouse clicks
//   - [Live]: the frame-driver model with click-to-spawn
//
// # Key Bindings
//
//	Click - Spawn an orbiting body at the pointer
//	Space - Pause/Resume
//	R     - Reset to the anchor only
//	+ / - - Adjust time scale within the configured bounds
//	?     - Help overlay
//	Q     - Quit
package viz
