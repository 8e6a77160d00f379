package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/brailler"
	"github.com/submersibletoaster/brailler/glyph"
)

var scale = flag.Int("s", 1, "Upscale each reference cell by this factor before rasterizing")
var verbose = flag.Bool("v", false, "Verbose logging")

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *scale < 1 {
		fmt.Fprintln(os.Stderr, "scale must be at least 1")
		os.Exit(2)
	}

	perfect, edge := check(*scale)
	log.Infof("Perfect match %d , edge cases %d", perfect, len(edge))
	for _, e := range edge {
		fmt.Println(e)
	}
	if len(edge) > 0 {
		os.Exit(1)
	}
}

// check draws every dot pattern as a reference cell and rasterizes it back,
// returning the number of exact matches and a line per mismatch.
func check(scale int) (perfect int, edge []string) {
	for i := 0; i < 256; i++ {
		want := glyph.Mask(i)
		img := referenceCell(want, scale)
		got, err := brailler.RasterizeGrid(img, 1, 1)
		if err != nil {
			edge = append(edge, fmt.Sprintf("'%s'\t%v", want, err))
			continue
		}
		ref := brailler.Grid{Cols: 1, Rows: 1, Masks: []glyph.Mask{want}}
		d, _ := ref.Distance(got)
		if d == 0 {
			perfect++
			continue
		}
		log.Debugf("'%s' came back as '%s'", want, got.At(0, 0))
		edge = append(edge, fmt.Sprintf("'%s'\t%x\t'%s'\t%d dots off", want, want.Rune(), got.At(0, 0), d))
	}
	return perfect, edge
}

// referenceCell is a white 2x4 cell, times scale, with black raised dots.
func referenceCell(m glyph.Mask, scale int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, glyph.CellWidth*scale, glyph.CellHeight*scale))
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			img.SetGray(x, y, color.Gray{255})
		}
	}
	for i, d := range glyph.Dots {
		if !m.Has(i) {
			continue
		}
		for y := 0; y < scale; y++ {
			for x := 0; x < scale; x++ {
				img.SetGray(d.X*scale+x, d.Y*scale+y, color.Gray{0})
			}
		}
	}
	return img
}
