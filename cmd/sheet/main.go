package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/brailler/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "out.png", "Where to write the glyph sheet")
	dot := fs.Int("dot", 3, "Dot size in pixels")
	gap := fs.Int("gap", 1, "Spacing between dots in pixels")
	fg := fs.String("fg", "#000000", "Dot color")
	bg := fs.String("bg", "#ffffff", "Background color")
	text := fs.Bool("text", false, "Also print the 256 glyphs, 16 per line")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	opts := render.Options{DotSize: *dot, Gap: *gap}
	var err error
	if opts.Foreground, err = render.ParseColor(*fg); err != nil {
		log.Error(err)
		return 2
	}
	if opts.Background, err = render.ParseColor(*bg); err != nil {
		log.Error(err)
		return 2
	}

	if err := render.Save(*out, render.Sheet(opts)); err != nil {
		log.Error(err)
		return 1
	}
	log.Infof("Wrote %s", *out)

	if *text {
		fmt.Fprintln(stdout, render.SheetGrid().String(true))
	}
	return 0
}
