package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	ansi "github.com/gookit/color"
	"github.com/joshdk/preview"
	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/brailler"
	"github.com/submersibletoaster/brailler/batch"
	"github.com/submersibletoaster/brailler/render"
)

const usageHead = `Convert images to Braille text art.

Usage:
  brailler [flags] -f PATH      convert one .png or .jpg image
  brailler [flags] -d PATH      convert every image inside a directory
  brailler [flags] PATH         same as -f

Flags:
`

// showImage draws img inline in the terminal
var showImage = func(img image.Image) {
	preview.Image(img)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := batch.DefaultConfig()
	fs := flag.NewFlagSet("brailler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageHead)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.File, "f", "", "Convert .png or .jpg image at the specified path")
	fs.StringVar(&cfg.File, "file", "", "alias for -f")
	fs.StringVar(&cfg.Dir, "d", "", "Convert images inside a directory at the specified path")
	fs.StringVar(&cfg.Dir, "directory", "", "alias for -d")
	fs.BoolVar(&cfg.IncludeNewline, "n", false, "Generate the text with newline characters between rows. (Not accepted by some game signs)")
	fs.BoolVar(&cfg.IncludeNewline, "include_newline", false, "alias for -n")
	fs.IntVar(&cfg.Width, "w", brailler.DefaultWidth, "Output width in Braille cells")
	fs.IntVar(&cfg.Height, "h", brailler.DefaultHeight, "Output height in Braille cells")
	fs.StringVar(&cfg.OutDir, "o", batch.DefaultOutDir, "Directory the .txt files are written to")
	fs.BoolVar(&cfg.Print, "print", false, "Also print each result to stdout")
	fs.BoolVar(&cfg.Invert, "invert", false, "Invert the image before thresholding")
	fs.BoolVar(&cfg.Preview, "preview", false, "Also write a .preview.png of each result")
	fs.IntVar(&cfg.Workers, "workers", 1, "Number of worker routines")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a progress bar in directory mode")
	show := fs.Bool("show", false, "Display a dot preview of each result inline in the terminal")
	fg := fs.String("color", "", "Print results in this #rrggbb color (implies -print)")
	verbose := fs.Bool("v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	cfg.Args = fs.Args()

	if *verbose {
		log.SetLevel(log.DebugLevel)
		log.Debug("Setting verbose logging")
	}

	var style *ansi.RGBStyle
	if *fg != "" {
		c, err := render.ParseColor(*fg)
		if err != nil {
			fmt.Fprintln(stderr, ansi.Red.Sprintf("Error: %v", err))
			return 2
		}
		style = ansi.NewRGBStyle(toANSI(c))
		cfg.Print = false
	}

	cfg.OnResult = func(r batch.Result) {
		if r.Err != nil {
			fmt.Fprintln(stderr, ansi.Red.Sprintf("Failed to convert %s: %v", r.Input, r.Err))
			return
		}
		fmt.Fprintln(stdout, ansi.Green.Sprintf("Created ascii file: %s", r.Output))
		if r.PreviewErr != nil {
			fmt.Fprintln(stderr, ansi.Yellow.Sprintf("No preview for %s: %v", r.Input, r.PreviewErr))
		}
		if style != nil {
			fmt.Fprintln(stdout, style.Sprint(r.Art))
		}
		if *show {
			opts := render.DefaultOptions()
			opts.Label = filepath.Base(r.Input)
			showImage(render.Preview(r.Grid, opts))
		}
	}

	sum, err := batch.Run(ctx, cfg, stdout)
	if err != nil {
		var pathErr *batch.PathError
		if errors.As(err, &pathErr) || errors.Is(err, batch.ErrNoInput) || errors.Is(err, batch.ErrExclusive) {
			fs.Usage()
		}
		fmt.Fprintln(stderr, ansi.Red.Sprintf("Error: %v", err))
		return 1
	}
	log.WithFields(log.Fields{
		"converted": sum.Converted,
		"skipped":   len(sum.Skipped),
		"failed":    len(sum.Failed),
	}).Debug("Done")
	if len(sum.Failed) > 0 {
		return 1
	}
	return 0
}

func toANSI(in color.Color) (out ansi.RGBColor) {
	r, g, b, _ := in.RGBA()
	out = ansi.RGBColor{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0}
	return
}
