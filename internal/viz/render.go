package viz

import (
	"math"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Projection maps simulation-space coordinates onto canvas sub-pixels,
// preserving aspect ratio around the viewport center.
type Projection struct {
	scale      float64
	offX, offY float64
}

// NewProjection fits a simulation viewport onto a canvas.
func NewProjection(c *Canvas, simW, simH float64) Projection {
	subW := float64(c.Width * 2)
	subH := float64(c.Height * 4)
	scale := math.Min(subW/simW, subH/simH)
	return Projection{
		scale: scale,
		offX:  (subW - simW*scale) / 2,
		offY:  (subH - simH*scale) / 2,
	}
}

// ToCanvas converts a simulation-space point to sub-pixel coordinates.
func (p Projection) ToCanvas(v orbit.Vec2) (int, int) {
	return int(v.X*p.scale + p.offX), int(v.Y*p.scale + p.offY)
}

// ToSim converts sub-pixel coordinates back to simulation space, used to
// turn mouse clicks into spawn points.
func (p Projection) ToSim(x, y int) (float64, float64) {
	return (float64(x) - p.offX) / p.scale, (float64(y) - p.offY) / p.scale
}

// Radius converts a simulation-space radius to sub-pixels, never below 1.
func (p Projection) Radius(r float64) int {
	px := int(r * p.scale)
	if px < 1 {
		px = 1
	}
	return px
}

// DrawState renders a snapshot: each body's trail as a polyline, then its
// disk on top so fresh positions cover old trail dots.
func DrawState(c *Canvas, s orbit.State) {
	p := NewProjection(c, s.Width, s.Height)

	for _, b := range s.Bodies {
		if len(b.Trail) > 1 {
			pts := make([][2]int, len(b.Trail))
			for i, t := range b.Trail {
				x, y := p.ToCanvas(t)
				pts[i] = [2]int{x, y}
			}
			c.DrawPolyline(pts)
		}
	}

	for _, b := range s.Bodies {
		x, y := p.ToCanvas(b.Pos)
		c.FillCircle(x, y, p.Radius(b.Radius))
	}
}
