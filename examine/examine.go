package examine

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/brailler/glyph"
	"golang.org/x/image/draw"
)

// Grayscale - single channel copy of src with its origin moved to (0,0).
// Luma uses the ITU-R 601-2 weights on the straight (non premultiplied)
// channels, alpha is ignored.
func Grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if g, ok := src.(*image.Gray); ok {
		draw.Draw(out, out.Bounds(), g, b.Min, draw.Src)
		return out
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[out.PixOffset(x-b.Min.X, y-b.Min.Y)] = luma(c)
		}
	}
	return out
}

func luma(c color.NRGBA) uint8 {
	y := (19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16
	return uint8(y)
}

// Resample scales gray to exactly w x h pixels with bilinear
// interpolation. Aspect ratio is not preserved.
func Resample(gray *image.Gray, w, h int) *image.Gray {
	b := gray.Bounds()
	if b.Dx() == w && b.Dy() == h && b.Min == image.ZP {
		return gray
	}
	scaled := resize.Resize(uint(w), uint(h), gray, resize.Bilinear)
	if g, ok := scaled.(*image.Gray); ok && g.Bounds().Min == image.ZP {
		return g
	}
	return Grayscale(scaled)
}

// Cel - one Braille cell of a resampled image
type Cel struct {
	Origin  image.Rectangle // pixel area covered by the cell
	CharPos image.Point     // column,row in the output grid
	Nth     int             // row-major index
	Mask    glyph.Mask
}

// ImageToCels walks gray in row-major order, cols x rows cells of
// glyph.CellWidth x glyph.CellHeight pixels each, and thresholds every dot.
// Dots falling outside gray are left off.
func ImageToCels(gray *image.Gray, cols, rows int) []Cel {
	b := gray.Bounds()
	out := make([]Cel, 0, cols*rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0 := b.Min.X + cx*glyph.CellWidth
			y0 := b.Min.Y + cy*glyph.CellHeight
			origin := image.Rect(x0, y0, x0+glyph.CellWidth, y0+glyph.CellHeight)
			mask := glyph.FromPixels(func(dx, dy int) (uint8, bool) {
				p := image.Pt(x0+dx, y0+dy)
				if !p.In(b) {
					return 0, false
				}
				return gray.GrayAt(p.X, p.Y).Y, true
			})
			out = append(out, Cel{
				Origin:  origin,
				CharPos: image.Point{cx, cy},
				Nth:     len(out),
				Mask:    mask,
			})
		}
	}
	log.Debugf("ImageToCels: %dx%d cels from %v", cols, rows, b)
	return out
}

// Masks flattens cels to their masks, keeping order.
func Masks(cels []Cel) []glyph.Mask {
	out := make([]glyph.Mask, len(cels))
	for i, c := range cels {
		out[i] = c.Mask
	}
	return out
}
