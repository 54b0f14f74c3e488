package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planedit",
	Short: "Floor-plan opening editor",
	Long: `planedit infers wall segments from a floor plan's room polygons and
places door, window, and garage openings onto them. It operates on the
plan's vector markup and can rasterize a schematic preview.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
