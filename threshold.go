package brailler

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/submersibletoaster/brailler/glyph"
)

// ThresholdPalette is the two tone palette of a rasterized image, light at
// index 0 and dark (raised dot) at index 1.
var ThresholdPalette = color.Palette{color.White, color.Black}

// Invert returns the negative of src, for light art on dark sources.
func Invert(src image.Image) image.Image {
	return effect.Invert(src)
}

// Thresholded renders the dot decisions of a grid back into a paletted
// image, one pixel per dot, using ThresholdPalette.
func Thresholded(g Grid) *image.Paletted {
	out := image.NewPaletted(image.Rect(0, 0, g.Cols*glyph.CellWidth, g.Rows*glyph.CellHeight), ThresholdPalette)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			m := g.At(x, y)
			for i, d := range glyph.Dots {
				if m.Has(i) {
					out.SetColorIndex(x*glyph.CellWidth+d.X, y*glyph.CellHeight+d.Y, 1)
				}
			}
		}
	}
	return out
}
