package walls

import (
	"sort"

	"github.com/asim/quadtree"

	"planedit/pkg/cfg"
	"planedit/pkg/geometry"
)

// Index is a spatial index over wall segments for click hit-testing. Each
// wall is registered at its endpoints and midpoint; a radius search plus an
// exact segment-distance pass resolves the nearest wall.
type Index struct {
	quadTree *quadtree.QuadTree
	walls    []Wall
}

func NewIndex(walls []Wall, bounds geometry.Rect) *Index {
	midX := (bounds.Min.X + bounds.Max.X) / 2
	midY := (bounds.Min.Y + bounds.Max.Y) / 2
	halfWidth := bounds.Max.X - midX
	halfHeight := bounds.Max.Y - midY

	// Add a small margin to avoid dropping walls at the edges
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	index := &Index{
		quadTree: quadtree.New(aabb, 0, nil),
		walls:    walls,
	}

	for i := range walls {
		wall := &index.walls[i]
		index.addAnchor(wall.Start, wall)
		index.addAnchor(wall.End, wall)
		index.addAnchor(wall.PointAt(0.5), wall)
	}
	return index
}

func (idx *Index) addAnchor(p geometry.Point, wall *Wall) {
	point := quadtree.NewPoint(p.X, p.Y, nil)
	zero := quadtree.NewPoint(0, 0, nil)
	existing := idx.quadTree.KNearest(quadtree.NewAABB(point, zero), 1, nil)
	if len(existing) > 0 {
		x, y := existing[0].Coordinates()
		if x == p.X && y == p.Y {
			set := existing[0].Data().(map[*Wall]struct{})
			set[wall] = struct{}{}
			return
		}
	}
	set := map[*Wall]struct{}{wall: {}}
	idx.quadTree.Insert(quadtree.NewPoint(p.X, p.Y, set))
}

// Nearest returns the wall closest to p within maxDist (segment distance),
// or nil when no wall is close enough. A zero maxDist uses the configured
// wall hit radius.
func (idx *Index) Nearest(p geometry.Point, maxDist float64) *Wall {
	if maxDist <= 0 {
		maxDist = cfg.WallHitMaxDistance
	}

	// Candidate anchors within the search box. Anchors are at most half a
	// wall length apart, so widen the box by the longest wall half-length.
	reach := maxDist
	for _, wall := range idx.walls {
		if half := wall.Length() / 2; half > reach {
			reach = half + maxDist
		}
	}
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(reach, reach, nil),
	)

	seen := map[*Wall]struct{}{}
	var candidates []*Wall
	for _, point := range idx.quadTree.Search(aabb) {
		for wall := range point.Data().(map[*Wall]struct{}) {
			if _, dup := seen[wall]; dup {
				continue
			}
			seen[wall] = struct{}{}
			candidates = append(candidates, wall)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		di := candidates[i].Segment().Distance(p)
		dj := candidates[j].Segment().Distance(p)
		if di != dj {
			return di < dj
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) == 0 || candidates[0].Segment().Distance(p) > maxDist {
		return nil
	}
	return candidates[0]
}

// ByID returns the wall with the given id, or nil.
func (idx *Index) ByID(id string) *Wall {
	for i := range idx.walls {
		if idx.walls[i].ID == id {
			return &idx.walls[i]
		}
	}
	return nil
}

// Walls returns the indexed walls.
func (idx *Index) Walls() []Wall {
	return idx.walls
}
