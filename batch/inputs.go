package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoInput - neither -f, -d nor a positional path was given
	ErrNoInput = errors.New("no input provided")
	// ErrExclusive - both a file and a directory were given
	ErrExclusive = errors.New("a file and a directory cannot both be given")
	// ErrNotFile - the -f path is a directory
	ErrNotFile = errors.New("is not a file")
	// ErrNotDir - the -d path is a regular file
	ErrNotDir = errors.New("is not a directory")
)

// PathError - an input path failed validation before any conversion
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if errors.Is(e.Err, os.ErrNotExist) {
		return fmt.Sprintf("'%s' does not exist", e.Path)
	}
	return fmt.Sprintf("'%s' %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// extensions with a registered decoder
var supported = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// Supported reports whether path has an image extension we convert.
func Supported(path string) bool {
	return supported[strings.ToLower(filepath.Ext(path))]
}

// OutputPath names the text file written for input inside outDir.
func OutputPath(outDir, input string) string {
	return filepath.Join(outDir, filepath.Base(input)+".txt")
}

// PreviewPath names the preview image written for input inside outDir.
func PreviewPath(outDir, input string) string {
	return filepath.Join(outDir, filepath.Base(input)+".preview.png")
}

// ResolveInputs turns the File, Dir or first positional argument of cfg
// into the list of paths to convert. Directory mode lists every entry of
// the directory, unfiltered.
func ResolveInputs(cfg Config) ([]string, error) {
	switch {
	case cfg.File != "" && cfg.Dir != "":
		return nil, ErrExclusive
	case cfg.File != "":
		if err := checkFile(cfg.File); err != nil {
			return nil, err
		}
		return []string{cfg.File}, nil
	case cfg.Dir != "":
		return listDir(cfg.Dir)
	case len(cfg.Args) > 0:
		if err := checkFile(cfg.Args[0]); err != nil {
			return nil, err
		}
		return []string{cfg.Args[0]}, nil
	}
	return nil, ErrNoInput
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &PathError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &PathError{Path: path, Err: ErrNotFile}
	}
	return nil
}

func listDir(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: dir, Err: ErrNotDir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}
