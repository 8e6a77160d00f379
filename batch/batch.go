// Package batch converts files and directories of images to Braille text
// files. It is the glue between the command line and package brailler.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	pb "github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
	"github.com/submersibletoaster/brailler"
	"github.com/submersibletoaster/brailler/render"
)

// DefaultOutDir is where text files land unless Config.OutDir is set
const DefaultOutDir = "output_images"

// Config holds everything a run needs; it replaces process wide flag state.
type Config struct {
	File string   // single image, -f
	Dir  string   // directory of images, -d
	Args []string // positional arguments, the first is used as a file

	OutDir         string
	Width          int
	Height         int
	IncludeNewline bool

	Invert   bool // negate the image before thresholding
	Preview  bool // also write a PNG preview of each result
	Print    bool // write each result's art to the run's writer
	Workers  int
	Progress bool

	// OnResult, when set, sees every result in input order.
	OnResult func(Result)
}

// DefaultConfig - 38x14 cells, no separator, one worker
func DefaultConfig() Config {
	return Config{
		OutDir:  DefaultOutDir,
		Width:   brailler.DefaultWidth,
		Height:  brailler.DefaultHeight,
		Workers: 1,
	}
}

// Result of converting one input. Err means no text file was written.
// PreviewErr is set when the text file was written but its preview PNG
// was not; such an item still counts as converted.
type Result struct {
	Nth        int
	Input      string
	Output     string
	Preview    string
	Art        string
	Grid       brailler.Grid
	Err        error
	PreviewErr error
}

// Summary of a run
type Summary struct {
	Converted int
	Skipped   []string
	Failed    []Result
}

// resultBuff sorts results back into input order
type resultBuff []Result

func (r resultBuff) Len() int {
	return len(r)
}
func (r resultBuff) Less(i, j int) bool {
	return r[i].Nth < r[j].Nth
}
func (r resultBuff) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

type job struct {
	nth  int
	path string
}

// Run resolves the inputs of cfg and converts each supported one. A failing
// item is recorded in the Summary and the run carries on. The returned error
// is for problems that stop the whole run: bad paths, bad dimensions, an
// uncreatable output directory or a cancelled ctx.
func Run(ctx context.Context, cfg Config, w io.Writer) (Summary, error) {
	var sum Summary
	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return sum, &brailler.InvalidDimensionError{Width: cfg.Width, Height: cfg.Height}
	}
	inputs, err := ResolveInputs(cfg)
	if err != nil {
		return sum, err
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	// created once, before any worker runs
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return sum, fmt.Errorf("create output directory: %w", err)
	}

	todo := make([]job, 0, len(inputs))
	for _, in := range inputs {
		if !Supported(in) {
			log.WithField("input", in).Debug("Skipping unsupported file")
			sum.Skipped = append(sum.Skipped, in)
			continue
		}
		todo = append(todo, job{nth: len(todo), path: in})
	}

	var bar *pb.ProgressBar
	if cfg.Progress && len(todo) > 1 {
		bar = pb.StartNew(len(todo))
	}

	workers(ctx, cfg, todo, func(r Result) {
		if r.Err != nil {
			log.WithField("input", r.Input).Warnf("Conversion failed: %v", r.Err)
			sum.Failed = append(sum.Failed, r)
		} else {
			log.WithField("input", r.Input).Debugf("Created ascii file: %s", r.Output)
			if r.PreviewErr != nil {
				log.WithField("input", r.Input).Warnf("Preview failed: %v", r.PreviewErr)
			}
			sum.Converted++
			if cfg.Print && w != nil {
				fmt.Fprintln(w, r.Art)
			}
		}
		if cfg.OnResult != nil {
			cfg.OnResult(r)
		}
		if bar != nil {
			bar.Increment()
		}
	})
	if bar != nil {
		bar.Finish()
	}
	return sum, ctx.Err()
}

// workers converts todo on cfg.Workers goroutines and hands results to
// emit one at a time, in job order. Dispatch stops when ctx is done.
func workers(ctx context.Context, cfg Config, todo []job, emit func(Result)) {
	n := cfg.Workers
	if n < 1 {
		n = 1
	}
	jobs := make(chan job)
	mid := make(chan Result, n)
	wait := sync.WaitGroup{}

	go func() {
		defer close(jobs)
		for _, j := range todo {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- j:
			case <-ctx.Done():
				return
			}
		}
	}()

	for i := 0; i < n; i++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for j := range jobs {
				mid <- convert(cfg, j)
			}
		}()
	}
	go func() {
		wait.Wait()
		close(mid)
	}()

	next := 0
	buffer := make(resultBuff, 0)
	for r := range mid {
		buffer = append(buffer, r)
		sort.Sort(buffer)
		for len(buffer) != 0 && buffer[0].Nth == next {
			emit(buffer[0])
			next++
			buffer = buffer[1:]
		}
	}
}

func convert(cfg Config, j job) Result {
	r := Result{Nth: j.nth, Input: j.path}
	img, err := brailler.Open(j.path)
	if err != nil {
		r.Err = err
		return r
	}
	if cfg.Invert {
		img = brailler.Invert(img)
	}
	grid, err := brailler.RasterizeGrid(img, cfg.Width, cfg.Height)
	if err != nil {
		r.Err = err
		return r
	}
	r.Grid = grid
	r.Art = grid.String(cfg.IncludeNewline)

	out := OutputPath(cfg.OutDir, j.path)
	if err := os.WriteFile(out, []byte(r.Art), 0644); err != nil {
		r.Err = fmt.Errorf("write %s: %w", out, err)
		return r
	}
	r.Output = out

	if cfg.Preview {
		opts := render.DefaultOptions()
		opts.Label = filepath.Base(j.path)
		p := PreviewPath(cfg.OutDir, j.path)
		if err := render.Save(p, render.Preview(grid, opts)); err != nil {
			r.PreviewErr = err
			return r
		}
		r.Preview = p
	}
	return r
}
