// Package render draws Braille grids back into images, for previews and
// glyph sheets.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/submersibletoaster/brailler"
	"github.com/submersibletoaster/brailler/glyph"
	"github.com/submersibletoaster/pixfont"
	"golang.org/x/image/draw"
)

// labelHeight is the band reserved above the dots for Options.Label
const labelHeight = 10

// Options - how a grid is drawn
type Options struct {
	DotSize    int // side of one dot square in pixels
	Gap        int // spacing between dots
	Foreground color.Color
	Background color.Color
	Label      string // optional caption drawn above the grid
}

// DefaultOptions draws black dots on white, 3px dots with 1px spacing.
func DefaultOptions() Options {
	return Options{
		DotSize:    3,
		Gap:        1,
		Foreground: color.Black,
		Background: color.White,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DotSize <= 0 {
		o.DotSize = d.DotSize
	}
	if o.Gap < 0 {
		o.Gap = d.Gap
	}
	if o.Foreground == nil {
		o.Foreground = d.Foreground
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	return o
}

// ParseColor reads a "#rrggbb" hex color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}

// DotCenter is the pixel at the middle of dot (px,py), where px and py
// count dots across the whole grid.
func DotCenter(px, py int, opts Options) image.Point {
	opts = opts.withDefaults()
	pitch := opts.DotSize + opts.Gap
	top := 0
	if opts.Label != "" {
		top = labelHeight
	}
	return image.Pt(opts.Gap+px*pitch+opts.DotSize/2, top+opts.Gap+py*pitch+opts.DotSize/2)
}

// Preview draws every raised dot of g as a square.
func Preview(g brailler.Grid, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	pitch := opts.DotSize + opts.Gap
	top := 0
	if opts.Label != "" {
		top = labelHeight
	}
	w := opts.Gap + g.Cols*glyph.CellWidth*pitch
	h := top + opts.Gap + g.Rows*glyph.CellHeight*pitch
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(opts.Background), image.ZP, draw.Src)

	if opts.Label != "" {
		pixfont.DrawString(out, opts.Gap, 1, opts.Label, opts.Foreground)
	}

	fg := image.NewUniform(opts.Foreground)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			m := g.At(x, y)
			for i, d := range glyph.Dots {
				if !m.Has(i) {
					continue
				}
				px := x*glyph.CellWidth + d.X
				py := y*glyph.CellHeight + d.Y
				at := image.Pt(opts.Gap+px*pitch, top+opts.Gap+py*pitch)
				dot := image.Rectangle{Min: at, Max: at.Add(image.Pt(opts.DotSize, opts.DotSize))}
				draw.Draw(out, dot, fg, image.ZP, draw.Src)
			}
		}
	}
	return out
}

// SheetGrid holds all 256 patterns, 16 per row, in codepoint order.
func SheetGrid() brailler.Grid {
	masks := make([]glyph.Mask, 256)
	for i := range masks {
		masks[i] = glyph.Mask(i)
	}
	return brailler.Grid{Cols: 16, Rows: 16, Masks: masks}
}

// Sheet draws SheetGrid.
func Sheet(opts Options) *image.RGBA {
	return Preview(SheetGrid(), opts)
}

// Save writes img as PNG.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
