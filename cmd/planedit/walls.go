package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planedit/pkg/rooms"
	"planedit/pkg/svgdoc"
	"planedit/pkg/walls"
)

var wallsCmd = &cobra.Command{
	Use:   "walls [plan.svg]",
	Short: "Infer and list the plan's wall segments",
	Args:  cobra.ExactArgs(1),
	RunE:  runWalls,
}

func init() {
	rootCmd.AddCommand(wallsCmd)
}

func loadPlan(filename string) (*svgdoc.Node, []rooms.RoomPolygon, []walls.Wall, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read plan: %w", err)
	}
	doc, err := svgdoc.Parse(data)
	if err != nil {
		return nil, nil, nil, err
	}
	roomPolys, err := rooms.Extract(doc)
	if err != nil {
		return nil, nil, nil, err
	}
	return doc, roomPolys, walls.Infer(roomPolys), nil
}

func runWalls(cmd *cobra.Command, args []string) error {
	_, roomPolys, wallSegs, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Rooms: %d\n", len(roomPolys))
	for _, room := range roomPolys {
		fmt.Printf("  %s (%s): %.0f sq units\n", room.ID, room.RoomType, room.Area())
	}

	fmt.Printf("Walls: %d\n", len(wallSegs))
	for _, wall := range wallSegs {
		kind := "interior"
		adjacent := wall.RoomA + " | " + wall.RoomB
		if wall.Exterior {
			kind = "exterior"
			adjacent = wall.RoomA
		}
		fmt.Printf("  %s %s (%.1f,%.1f)-(%.1f,%.1f) len=%.1f rooms=%s\n",
			wall.ID, kind, wall.Start.X, wall.Start.Y, wall.End.X, wall.End.Y, wall.Length(), adjacent)
	}
	return nil
}
