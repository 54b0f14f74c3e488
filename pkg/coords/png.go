package coords

import (
	"fmt"
	"image"
	"io"

	_ "image/png"
)

// ProbePNG reads a PNG header and returns its pixel dimensions without
// decoding the full image.
func ProbePNG(r io.Reader) (RasterSize, error) {
	config, format, err := image.DecodeConfig(r)
	if err != nil {
		return RasterSize{}, fmt.Errorf("probe raster: %w", err)
	}
	if format != "png" {
		return RasterSize{}, fmt.Errorf("probe raster: expected png, got %s", format)
	}
	return RasterSize{Width: config.Width, Height: config.Height}, nil
}
