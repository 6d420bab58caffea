package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// StateToSVG renders a snapshot as an SVG document: one polyline per body
// trail in the body's color, then the body disks on top. Coordinates map
// 1:1 from simulation space, so the image has the viewport's dimensions.
func StateToSVG(s orbit.State) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
`, s.Width, s.Height, s.Width, s.Height))

	for _, b := range s.Bodies {
		if len(b.Trail) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.2" stroke-opacity="0.6" d="M`, svgColor(b)))
		for i, p := range b.Trail {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, b := range s.Bodies {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, b.Pos.X, b.Pos.Y, b.Radius, svgColor(b)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func svgColor(b orbit.Body) string {
	if b.Color != "" {
		return b.Color
	}
	return "#c8c8ff"
}
