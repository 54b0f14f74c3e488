// Package svgdoc models plan markup as a structured XML tree. Opening
// insertion and removal are node operations with stable identity, never
// text splicing.
//
// Node models the fixed attribute set this editor reads and writes.
// Attributes outside that set are dropped on a parse/marshal round trip,
// so marshalling foreign plans is lossy.
package svgdoc

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"planedit/pkg/geometry"
)

// OpeningsLayerID names the single group that holds every placed opening.
// It is created on first use and reused thereafter.
const OpeningsLayerID = "openings-layer"

type Node struct {
	XMLName   xml.Name
	Width     string  `xml:"width,attr,omitempty"`
	Height    string  `xml:"height,attr,omitempty"`
	ViewBox   string  `xml:"viewBox,attr,omitempty"`
	ID        string  `xml:"id,attr,omitempty"`
	Styles    string  `xml:"style,attr,omitempty"`
	D         string  `xml:"d,attr,omitempty"`
	Transform string  `xml:"transform,attr,omitempty"`
	Points    string  `xml:"points,attr,omitempty"`
	Href      string  `xml:"href,attr,omitempty"`
	Fill      string  `xml:"fill,attr,omitempty"`
	Stroke    string  `xml:"stroke,attr,omitempty"`
	// Rect geometry. Width/Height above double as the rect size; rects hold
	// plain numbers there while the root svg element may carry units.
	X float64 `xml:"x,attr,omitempty"`
	Y float64 `xml:"y,attr,omitempty"`

	RoomID   string `xml:"data-room-id,attr,omitempty"`
	RoomType string `xml:"data-room-type,attr,omitempty"`

	OpeningID    string `xml:"data-opening-id,attr,omitempty"`
	OpeningKind  string `xml:"data-opening-kind,attr,omitempty"`
	OpeningWall  string `xml:"data-opening-wall,attr,omitempty"`
	OpeningPos   string `xml:"data-opening-pos,attr,omitempty"`
	OpeningWidth string `xml:"data-opening-width,attr,omitempty"`
	OpeningSwing string `xml:"data-opening-swing,attr,omitempty"`

	Children []*Node `xml:",any"`

	style          map[string]string
	styleNameOrder map[string]int
}

func Parse(data []byte) (*Node, error) {
	var doc Node
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return &doc, nil
}

func (n *Node) Marshal() ([]byte, error) {
	n.prepareMarshal()
	return xml.MarshalIndent(n, "", "  ")
}

func (n *Node) prepareMarshal() {
	n.serializeStyle()
	for _, child := range n.Children {
		// SVG namespace at root is enough
		child.XMLName.Space = ""
		child.prepareMarshal()
	}
}

// Viewport returns the declared viewBox rectangle. Markup without a
// parseable viewBox cannot anchor a coordinate mapping and is rejected.
func (n *Node) Viewport() (geometry.Rect, error) {
	fields := strings.Fields(n.ViewBox)
	if len(fields) != 4 {
		return geometry.Rect{}, fmt.Errorf("markup has no parseable viewBox (%q)", n.ViewBox)
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("bad viewBox value %q: %w", f, err)
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return geometry.Rect{}, fmt.Errorf("degenerate viewBox %q", n.ViewBox)
	}
	return geometry.Rect{
		Min: geometry.Point{X: vals[0], Y: vals[1]},
		Max: geometry.Point{X: vals[0] + vals[2], Y: vals[1] + vals[3]},
	}, nil
}

// Walk visits n and every descendant in document order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// FindByID returns the first node in document order with the given id.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.ID == id {
			found = node
		}
	})
	return found
}

// Name returns the local element name.
func (n *Node) Name() string {
	return n.XMLName.Local
}

// AppendChild adds a child element.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// RemoveChild removes the first direct child with the given id and reports
// whether anything was removed.
func (n *Node) RemoveChild(id string) bool {
	for i, child := range n.Children {
		if child.ID == id {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// OpeningsLayer returns the well-known openings group, creating it as a
// direct child of the root on first use. Repeated calls reuse the same
// group; a plan never carries two.
func (n *Node) OpeningsLayer() *Node {
	if layer := n.FindByID(OpeningsLayerID); layer != nil {
		return layer
	}
	layer := &Node{
		XMLName: xml.Name{Local: "g"},
		ID:      OpeningsLayerID,
	}
	n.AppendChild(layer)
	return layer
}

// Element creates a bare element node with the given local name.
func Element(name string) *Node {
	return &Node{XMLName: xml.Name{Local: name}}
}

// ParsePoints parses a polygon/polyline points attribute.
func ParsePoints(s string) []geometry.Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	var points []geometry.Point
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points
}

// FormatPoints serializes points for a polygon/polyline points attribute.
func FormatPoints(points []geometry.Point) string {
	var buf strings.Builder
	for i, p := range points {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(FormatNumber(p.X) + "," + FormatNumber(p.Y))
	}
	return buf.String()
}

func ParseNumber(n string) float64 {
	val, _ := strconv.ParseFloat(n, 64)
	return val
}

func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
