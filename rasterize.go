// Package brailler turns raster images into grids of Braille patterns.
//
// Every output cell covers a 2x4 block of the resampled image; each pixel
// in the block darker than the threshold raises the matching dot.
package brailler

import (
	"image"

	"github.com/submersibletoaster/brailler/examine"
	"github.com/submersibletoaster/brailler/glyph"
)

const (
	// DefaultWidth is the default number of cells per row
	DefaultWidth = 38
	// DefaultHeight is the default number of rows
	DefaultHeight = 14
)

// Rasterize converts img to width x height Braille cells. With
// includeSeparator the rows are joined by "\n", otherwise they are
// concatenated.
func Rasterize(img image.Image, width, height int, includeSeparator bool) (string, error) {
	g, err := RasterizeGrid(img, width, height)
	if err != nil {
		return "", err
	}
	return g.String(includeSeparator), nil
}

// RasterizeGrid is Rasterize without the final string assembly.
func RasterizeGrid(img image.Image, width, height int) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	if img == nil || img.Bounds().Empty() {
		return Grid{}, &ImageDecodeError{Err: errEmptyImage}
	}

	gray := examine.Grayscale(img)
	gray = examine.Resample(gray, width*glyph.CellWidth, height*glyph.CellHeight)
	cels := examine.ImageToCels(gray, width, height)

	return Grid{Cols: width, Rows: height, Masks: examine.Masks(cels)}, nil
}
