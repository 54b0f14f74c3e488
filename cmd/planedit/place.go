package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"planedit/pkg/catalog"
	"planedit/pkg/placement"
	"planedit/pkg/walls"
)

var placeCmd = &cobra.Command{
	Use:   "place [plan.svg]",
	Short: "Validate and patch an opening into the plan markup",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlace,
}

var (
	placeWallID string
	placeKind   string
	placePos    float64
	placeWidth  float64
	placeSwing  string
	placeOut    string
)

func init() {
	placeCmd.Flags().StringVar(&placeWallID, "wall", "", "wall id (from the walls subcommand)")
	placeCmd.Flags().StringVar(&placeKind, "kind", string(catalog.KindInteriorSingleDoor), "opening kind")
	placeCmd.Flags().Float64Var(&placePos, "pos", 0.5, "position along the wall, 0-1")
	placeCmd.Flags().Float64Var(&placeWidth, "width", 36, "opening width in inches")
	placeCmd.Flags().StringVar(&placeSwing, "swing", "", "swing direction (left|right)")
	placeCmd.Flags().StringVarP(&placeOut, "out", "o", "", "output file (default: overwrite input)")
	rootCmd.AddCommand(placeCmd)
}

func runPlace(cmd *cobra.Command, args []string) error {
	doc, _, wallSegs, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	var wall *walls.Wall
	for i := range wallSegs {
		if wallSegs[i].ID == placeWallID {
			wall = &wallSegs[i]
			break
		}
	}
	if wall == nil {
		return fmt.Errorf("no wall with id %q (run the walls subcommand to list ids)", placeWallID)
	}

	p := placement.Placement{
		ID:          uuid.NewString(),
		Kind:        catalog.Kind(placeKind),
		WallID:      wall.ID,
		Position:    placePos,
		WidthInches: placeWidth,
		Swing:       placement.Swing(placeSwing),
	}

	existing := placement.Detect(doc)
	if ok, reason := placement.Validate(p, *wall, existing); !ok {
		return fmt.Errorf("placement rejected: %s", reason)
	}

	placement.InsertOpening(doc, p, *wall)

	out, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	outFile := placeOut
	if outFile == "" {
		outFile = args[0]
	}
	if err := os.WriteFile(outFile, out, 0644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	fmt.Printf("placed %s %s on wall %s at %.2f (%g\")\n", p.Kind, p.ID, wall.ID, p.Position, p.WidthInches)
	return nil
}
