package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"planedit/pkg/placement"
)

var detectCmd = &cobra.Command{
	Use:   "detect [plan.svg]",
	Short: "List the openings already placed in the plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	doc, _, _, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	placements := placement.Detect(doc)
	fmt.Printf("Openings: %d\n", len(placements))
	for _, p := range placements {
		swing := ""
		if p.Swing != placement.SwingNone {
			swing = " swing=" + string(p.Swing)
		}
		fmt.Printf("  %s %s wall=%s pos=%.2f width=%g\"%s\n",
			p.ID, p.Kind, p.WallID, p.Position, p.WidthInches, swing)
	}
	return nil
}
