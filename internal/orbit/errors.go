package orbit

import "errors"

// Domain errors for simulation operations.
var (
	// ErrDegenerateSpawn indicates a spawn point exactly on the anchor
	// center, where the orbital speed is undefined.
	ErrDegenerateSpawn = errors.New("orbit: spawn point coincides with anchor center")

	// ErrInvalidBody indicates a body violating store preconditions
	// (non-positive mass or radius, non-finite position or velocity).
	ErrInvalidBody = errors.New("orbit: invalid body (non-positive mass/radius or non-finite values)")

	// ErrNoAnchor indicates a state without an anchor body.
	ErrNoAnchor = errors.New("orbit: state has no anchor body")
)
