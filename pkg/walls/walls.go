// Package walls derives wall segments from room polygon adjacency. Edges
// shared between two rooms become interior walls; unmatched boundary edges
// become exterior walls.
package walls

import (
	"fmt"
	"math"
	"sort"

	"planedit/pkg/cfg"
	"planedit/pkg/geometry"
	"planedit/pkg/rooms"
)

type Wall struct {
	ID       string
	Start    geometry.Point
	End      geometry.Point
	Exterior bool
	RoomA    string
	RoomB    string // empty iff the wall is exterior

	length float64
}

func newWall(id string, start, end geometry.Point, roomA, roomB string) Wall {
	return Wall{
		ID:       id,
		Start:    start,
		End:      end,
		Exterior: roomB == "",
		RoomA:    roomA,
		RoomB:    roomB,
		length:   start.Distance(end),
	}
}

func (w Wall) Length() float64 {
	if w.length == 0 {
		return w.Start.Distance(w.End)
	}
	return w.length
}

func (w Wall) Segment() geometry.LineSegment {
	return geometry.LineSegment{A: w.Start, B: w.End}
}

func (w Wall) Direction() geometry.Vector2 {
	return w.Segment().Direction()
}

func (w Wall) Normal() geometry.Vector2 {
	return w.Segment().Normal()
}

func (w Wall) Angle() float64 {
	return w.Segment().Angle()
}

// PointAt returns the point at position t along the wall, t in [0, 1].
func (w Wall) PointAt(t float64) geometry.Point {
	return w.Segment().PointAt(t)
}

// ProjectT projects p onto the wall and returns its position in [0, 1].
func (w Wall) ProjectT(p geometry.Point) float64 {
	return w.Segment().ProjectT(p)
}

// edge is one polygon edge awaiting adjacency matching. Matched portions are
// recorded as consumed spans in the edge's own axis parameter, measured from
// A along the edge direction.
type edge struct {
	room     string
	seg      geometry.LineSegment
	dir      geometry.Vector2
	len      float64
	consumed []span
}

type span struct {
	lo float64
	hi float64
}

func (s span) length() float64 {
	return s.hi - s.lo
}

// subtract returns the portions of s not covered by any consumed span.
func subtract(s span, consumed []span) []span {
	remaining := []span{s}
	for _, c := range consumed {
		var next []span
		for _, r := range remaining {
			if c.hi <= r.lo || c.lo >= r.hi {
				next = append(next, r)
				continue
			}
			if c.lo > r.lo {
				next = append(next, span{lo: r.lo, hi: c.lo})
			}
			if c.hi < r.hi {
				next = append(next, span{lo: c.hi, hi: r.hi})
			}
		}
		remaining = next
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].lo < remaining[j].lo })
	return remaining
}

// param returns p's position along e's axis.
func (e *edge) param(p geometry.Point) float64 {
	return p.Minus(e.seg.A).Dot(e.dir)
}

// pointAt returns the point at axis parameter t.
func (e *edge) pointAt(t float64) geometry.Point {
	return e.seg.A.Add(e.dir.Scale(t))
}

func (e *edge) consume(s span) {
	e.consumed = append(e.consumed, s)
}

// spanOf returns the edge-axis span covering the segment from a to b.
func (e *edge) spanOf(a, b geometry.Point) span {
	ta, tb := e.param(a), e.param(b)
	if ta > tb {
		ta, tb = tb, ta
	}
	return span{lo: ta, hi: tb}
}

func collinear(a, b *edge) bool {
	return math.Abs(a.dir.CrossProductZ(b.dir)) <= cfg.CollinearTolerance
}

func coincident(a, b *edge) bool {
	return a.seg.LineDistance(b.seg.A) <= cfg.CoincidentTolerance &&
		a.seg.LineDistance(b.seg.B) <= cfg.CoincidentTolerance
}

const exactMatchEps = 0.01

func exactMatch(a, b *edge) bool {
	return (a.seg.A.Distance(b.seg.A) <= exactMatchEps && a.seg.B.Distance(b.seg.B) <= exactMatchEps) ||
		(a.seg.A.Distance(b.seg.B) <= exactMatchEps && a.seg.B.Distance(b.seg.A) <= exactMatchEps)
}

// Infer derives wall segments from the given rooms. Interior walls span
// exactly the overlap of two coincident edges from different rooms; whatever
// boundary is left over becomes exterior walls. Output order is stable with
// respect to input order.
func Infer(roomPolys []rooms.RoomPolygon) []Wall {
	var edges []*edge
	for _, room := range roomPolys {
		for _, seg := range room.Points.Edges() {
			length := seg.Length()
			if length < cfg.MinWallLength {
				// rounding-noise micro-edge
				continue
			}
			edges = append(edges, &edge{
				room: room.ID,
				seg:  seg,
				dir:  seg.Direction(),
				len:  length,
			})
		}
	}

	var walls []Wall
	nextID := 0
	id := func() string {
		nextID++
		return fmt.Sprintf("w%d", nextID)
	}

	// Exact coincident edges are matched before partial overlaps so a full
	// shared edge is never double-counted by its partial neighbors.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(edges); i++ {
			for j := i + 1; j < len(edges); j++ {
				a, b := edges[i], edges[j]
				if a.room == b.room {
					continue
				}
				if exact := exactMatch(a, b); exact != (pass == 0) {
					continue
				}
				if !collinear(a, b) || !coincident(a, b) {
					continue
				}
				walls = append(walls, matchPair(a, b, id)...)
			}
		}
	}

	// Unconsumed boundary remainders are exterior.
	for _, e := range edges {
		for _, left := range subtract(span{lo: 0, hi: e.len}, e.consumed) {
			if left.length() < cfg.MinWallLength {
				continue
			}
			walls = append(walls, newWall(id(), e.pointAt(left.lo), e.pointAt(left.hi), e.room, ""))
		}
	}

	return walls
}

// matchPair emits interior walls for the unconsumed overlap of two
// collinear, coincident edges from different rooms.
func matchPair(a, b *edge, id func() string) []Wall {
	// Overlap of the two projections onto a's axis.
	ov := span{lo: 0, hi: a.len}
	bSpan := a.spanOf(b.seg.A, b.seg.B)
	ov.lo = math.Max(ov.lo, bSpan.lo)
	ov.hi = math.Min(ov.hi, bSpan.hi)
	if ov.length() < cfg.MinWallLength {
		return nil
	}

	var walls []Wall
	for _, ra := range subtract(ov, a.consumed) {
		// Clip against b's unconsumed portion as well, working in b's axis.
		pa, pb := a.pointAt(ra.lo), a.pointAt(ra.hi)
		rb := b.spanOf(pa, pb)
		for _, piece := range subtract(rb, b.consumed) {
			if piece.length() < cfg.MinWallLength {
				continue
			}
			start, end := b.pointAt(piece.lo), b.pointAt(piece.hi)
			walls = append(walls, newWall(id(), start, end, a.room, b.room))
			a.consume(a.spanOf(start, end))
			b.consume(piece)
		}
	}
	return walls
}
