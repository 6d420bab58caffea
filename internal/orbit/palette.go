package orbit

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// AnchorColor is the fixed render color of the anchor body.
const AnchorColor = "#ffcc33"

// goldenAngle spaces consecutive hues maximally apart around the wheel.
const goldenAngle = 137.50776405003785

// Palette hands out distinguishable satellite hues as hex strings. It
// walks the hue wheel by the golden angle from a random starting hue, so
// neighbors in spawn order never look alike while the sequence stays
// reproducible for a seeded rng.
type Palette struct {
	hue float64
}

func NewPalette(rng *rand.Rand) *Palette {
	return &Palette{hue: rng.Float64() * 360}
}

func (p *Palette) Next() string {
	c := colorful.Hsv(p.hue, 0.72, 0.95)
	p.hue = math.Mod(p.hue+goldenAngle, 360)
	return c.Hex()
}
