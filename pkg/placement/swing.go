package placement

import (
	"math"

	"planedit/pkg/geometry"
)

// swingLeaf builds a door leaf and its swing arc in the local wall frame.
// hingeX and latchX are positions along the wall line; the leaf length (and
// arc radius) is the distance between them. The sweep is derived from the
// hinge-to-latch and hinge-to-open vectors rather than fixed sign
// conventions: the arc runs from the closed position (leaf along the wall,
// pointing at the latch) to the open position (leaf perpendicular to the
// wall), and its orientation is the sign of the cross product of those two
// vectors. outward selects which side of the wall the leaf opens toward
// (+y is the wall normal).
func swingLeaf(hingeX, latchX float64, outward bool) (Line, Arc) {
	radius := math.Abs(latchX - hingeX)
	yOpen := -radius
	if outward {
		yOpen = radius
	}
	hinge := geometry.Point{X: hingeX}
	closed := geometry.Point{X: latchX}
	open := geometry.Point{X: hingeX, Y: yOpen}

	start := math.Atan2(closed.Y-hinge.Y, closed.X-hinge.X)
	end := math.Atan2(open.Y-hinge.Y, open.X-hinge.X)
	cross := closed.Minus(hinge).CrossProductZ(open.Minus(hinge))

	return Line{From: hinge, To: open}, Arc{
		Center:     hinge,
		Radius:     radius,
		StartAngle: start,
		EndAngle:   end,
		Clockwise:  cross < 0,
	}
}
