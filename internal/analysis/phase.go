// Package analysis builds phase-space views of recorded trajectories.
package analysis

import (
	"fmt"
	"strings"
)

// PhasePortrait2D holds a 2D projection of a trajectory.
type PhasePortrait2D struct {
	XIndex, YIndex int
	Points         []struct{ X, Y float64 }
}

// PortraitFromStates projects recorded states onto two coordinate
// axes. Returns nil if an index is out of range for the trajectory.
func PortraitFromStates(states [][]float64, xIdx, yIdx int) *PhasePortrait2D {
	if len(states) == 0 || xIdx >= len(states[0]) || yIdx >= len(states[0]) {
		return nil
	}

	portrait := &PhasePortrait2D{
		XIndex: xIdx,
		YIndex: yIdx,
		Points: make([]struct{ X, Y float64 }, 0, len(states)),
	}

	for _, s := range states {
		portrait.Points = append(portrait.Points, struct{ X, Y float64 }{X: s[xIdx], Y: s[yIdx]})
	}

	return portrait
}

// ToASCII renders the portrait as a scatter plot. Early points draw as
// '.', middle as 'o', late as '●' so the direction of travel reads off
// the plot.
func (p *PhasePortrait2D) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 {
		return ""
	}

	xMin, xMax := p.Points[0].X, p.Points[0].X
	yMin, yMax := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < xMin {
			xMin = pt.X
		}
		if pt.X > xMax {
			xMax = pt.X
		}
		if pt.Y < yMin {
			yMin = pt.Y
		}
		if pt.Y > yMax {
			yMax = pt.Y
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, pt := range p.Points {
		px := int(float64(width-1) * (pt.X - xMin) / xRange)
		py := int(float64(height-1) * (pt.Y - yMin) / yRange)
		py = height - 1 - py
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		switch {
		case i < len(p.Points)/3:
			canvas[py][px] = '.'
		case i < 2*len(p.Points)/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %8.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(&b, "  %8.2f │", (yMax+yMin)/2)
		} else {
			b.WriteString("           │")
		}
		b.WriteString(string(canvas[i]))
		b.WriteString("│\n")
	}
	fmt.Fprintf(&b, "  %8.2f └%s┘\n", yMin, strings.Repeat("─", width))
	fmt.Fprintf(&b, "           %.2f%s%.2f\n", xMin, strings.Repeat(" ", max(width-16, 1)), xMax)
	b.WriteString("\nLegend: . = early, o = middle, ● = late\n")
	return b.String()
}
