// Package rooms extracts labeled room polygons from plan markup.
package rooms

import (
	"fmt"
	"strings"

	"planedit/pkg/geometry"
	"planedit/pkg/svgdoc"
)

type RoomPolygon struct {
	ID       string
	RoomType string
	Fill     string
	Points   geometry.Polygon
}

func (r RoomPolygon) Area() float64 {
	return r.Points.Area()
}

func (r RoomPolygon) Centroid() geometry.Point {
	return r.Points.Centroid()
}

func (r RoomPolygon) Bounds() geometry.Rect {
	return r.Points.Bounds()
}

// Fill values that mark background, walls, and structural strokes rather
// than rooms.
var fillSentinels = map[string]bool{
	"":            true,
	"none":        true,
	"transparent": true,
	"white":       true,
	"#ffffff":     true,
	"#fff":        true,
	"black":       true,
	"#000000":     true,
	"#000":        true,
}

// IsRoomFill reports whether a fill color denotes a room interior.
func IsRoomFill(fill string) bool {
	return !fillSentinels[strings.ToLower(strings.TrimSpace(fill))]
}

// Training palette of the plan generator; used to recover a room type when
// the markup carries a fill color but no data-room-type attribute.
var paletteRoomTypes = map[string]string{
	"fd4041": "bedroom",
	"3a6df8": "bathroom",
	"e94992": "kitchen",
	"56b835": "living_room",
	"f7a325": "dining_room",
	"8b54d6": "garage",
	"2bb3a3": "hallway",
	"b58a51": "closet",
}

// ClassifyFill maps a fill color to a room type from the training palette.
func ClassifyFill(fill string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(fill))
	normalized = strings.TrimPrefix(normalized, "#")
	roomType, ok := paletteRoomTypes[normalized]
	return roomType, ok
}

// Extract walks the markup and returns every room polygon. Rects and
// polygons carrying a room fill qualify; sentinel fills, degenerate
// geometry, and anything inside the openings layer are skipped.
func Extract(doc *svgdoc.Node) ([]RoomPolygon, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil markup document")
	}

	var rooms []RoomPolygon
	var descend func(node *svgdoc.Node)
	descend = func(node *svgdoc.Node) {
		if node.ID == svgdoc.OpeningsLayerID {
			return
		}
		if room, ok := roomFromNode(node); ok {
			rooms = append(rooms, room)
		}
		for _, child := range node.Children {
			descend(child)
		}
	}
	for _, child := range doc.Children {
		descend(child)
	}
	return rooms, nil
}

func roomFromNode(node *svgdoc.Node) (RoomPolygon, bool) {
	fill := node.FillColor()
	if !IsRoomFill(fill) {
		return RoomPolygon{}, false
	}

	var points geometry.Polygon
	switch node.Name() {
	case "rect":
		w := svgdoc.ParseNumber(node.Width)
		h := svgdoc.ParseNumber(node.Height)
		if w <= 0 || h <= 0 {
			return RoomPolygon{}, false
		}
		points = geometry.Polygon{
			{X: node.X, Y: node.Y},
			{X: node.X + w, Y: node.Y},
			{X: node.X + w, Y: node.Y + h},
			{X: node.X, Y: node.Y + h},
		}
	case "polygon":
		points = svgdoc.ParsePoints(node.Points)
	default:
		return RoomPolygon{}, false
	}

	// Degenerate polygons never reach wall inference.
	if len(points) < 3 || points.Area() == 0 {
		return RoomPolygon{}, false
	}

	roomType := node.RoomType
	if roomType == "" {
		if fromFill, ok := ClassifyFill(fill); ok {
			roomType = fromFill
		} else {
			roomType = "unknown"
		}
	}

	id := node.RoomID
	if id == "" {
		id = node.ID
	}

	return RoomPolygon{
		ID:       id,
		RoomType: roomType,
		Fill:     fill,
		Points:   points,
	}, true
}
