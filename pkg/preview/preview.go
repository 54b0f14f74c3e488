// Package preview rasterizes a plan (rooms, walls, placed openings) to a
// PNG. The output's pixel dimensions key the coordinate mapper the same way
// a backend render would.
package preview

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"planedit/pkg/cfg"
	"planedit/pkg/coords"
	"planedit/pkg/geometry"
	"planedit/pkg/placement"
	"planedit/pkg/rooms"
	"planedit/pkg/walls"
)

// Options control the rasterization.
type Options struct {
	// PixelsPerUnit scales vector units to pixels. Zero defaults to 1.
	PixelsPerUnit float64
}

// Render draws the plan into a PNG and returns the encoded bytes along with
// the raster's pixel dimensions. Symbols must already be transformed into
// vector space.
func Render(viewport geometry.Rect, roomPolys []rooms.RoomPolygon, wallSegs []walls.Wall, symbols []placement.Symbol, opts Options) ([]byte, coords.RasterSize, error) {
	ppu := opts.PixelsPerUnit
	if ppu == 0 {
		ppu = 1
	}
	if viewport.Width() <= 0 || viewport.Height() <= 0 {
		return nil, coords.RasterSize{}, fmt.Errorf("degenerate viewport %+v", viewport)
	}

	size := coords.RasterSize{
		Width:  int(math.Ceil(viewport.Width() * ppu)),
		Height: int(math.Ceil(viewport.Height() * ppu)),
	}

	ctx := gg.NewContext(size.Width, size.Height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	ctx.Scale(ppu, ppu)
	ctx.Translate(-viewport.Min.X, -viewport.Min.Y)

	for _, room := range roomPolys {
		if len(room.Points) < 3 {
			continue
		}
		ctx.NewSubPath()
		ctx.MoveTo(room.Points[0].X, room.Points[0].Y)
		for _, p := range room.Points[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.ClosePath()
		ctx.SetHexColor(fillHex(room.Fill))
		ctx.Fill()
	}

	ctx.SetRGB(0, 0, 0)
	ctx.SetLineWidth(cfg.WallThickness)
	for _, wall := range wallSegs {
		ctx.DrawLine(wall.Start.X, wall.Start.Y, wall.End.X, wall.End.Y)
		ctx.Stroke()
	}

	for _, sym := range symbols {
		// Break first, then the marks over it.
		ctx.SetRGB(1, 1, 1)
		ctx.DrawRectangle(sym.Break.Min.X, sym.Break.Min.Y, sym.Break.Width(), sym.Break.Height())
		ctx.Fill()

		ctx.SetRGB(0, 0, 0)
		ctx.SetLineWidth(1)
		for _, line := range sym.Lines {
			ctx.DrawLine(line.From.X, line.From.Y, line.To.X, line.To.Y)
			ctx.Stroke()
		}
		for _, arc := range sym.Arcs {
			a1, a2 := arc.StartAngle, arc.EndAngle
			if arc.Clockwise && a2 > a1 {
				a2 -= 2 * math.Pi
			}
			if !arc.Clockwise && a2 < a1 {
				a2 += 2 * math.Pi
			}
			ctx.DrawArc(arc.Center.X, arc.Center.Y, arc.Radius, a1, a2)
			ctx.Stroke()
		}
	}

	var buf bytes.Buffer
	if err := ctx.EncodePNG(&buf); err != nil {
		return nil, coords.RasterSize{}, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), size, nil
}

// fillHex normalizes a fill color for gg, defaulting oddballs to a neutral
// gray rather than failing the whole render.
func fillHex(fill string) string {
	if len(fill) > 0 && fill[0] == '#' {
		return fill
	}
	switch fill {
	case "white":
		return "#ffffff"
	case "black":
		return "#000000"
	}
	return "#dddddd"
}
