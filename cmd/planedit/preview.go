package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planedit/pkg/placement"
	"planedit/pkg/preview"
	"planedit/pkg/walls"
)

var previewCmd = &cobra.Command{
	Use:   "preview [plan.svg]",
	Short: "Rasterize a schematic preview of the plan to PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var (
	previewOut   string
	previewScale float64
)

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "preview.png", "output PNG file")
	previewCmd.Flags().Float64Var(&previewScale, "scale", 1, "pixels per plan unit")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, roomPolys, wallSegs, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	viewport, err := doc.Viewport()
	if err != nil {
		return err
	}

	// Transform each placed opening's symbol into vector space.
	wallByID := map[string]walls.Wall{}
	for _, wall := range wallSegs {
		wallByID[wall.ID] = wall
	}
	var symbols []placement.Symbol
	for _, p := range placement.Detect(doc) {
		wall, ok := wallByID[p.WallID]
		if !ok {
			continue
		}
		sym := placement.Generate(p, wall)
		symbols = append(symbols, sym.Apply(placement.WallTransform(p, wall), wall.Angle()))
	}

	png, size, err := preview.Render(viewport, roomPolys, wallSegs, symbols, preview.Options{
		PixelsPerUnit: previewScale,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(previewOut, png, 0644); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", previewOut, size.Width, size.Height)
	return nil
}
