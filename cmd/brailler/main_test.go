package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blackPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRunFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dark.png")
	blackPNG(t, in)
	out := filepath.Join(dir, "out")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"file flag", []string{"-o", out, "-w", "2", "-h", "2", "-f", in}, "⣿⣿⣿⣿"},
		{"positional with newline", []string{"-o", out, "-w", "2", "-h", "2", "-n", in}, "⣿⣿\n⣿⣿"},
		{"long names", []string{"-o", out, "-w", "1", "-h", "1", "-include_newline", "-file", in}, "⣿"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())
			assert.Contains(t, stdout.String(), "Created ascii file")

			got, err := os.ReadFile(filepath.Join(out, "dark.png.txt"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRunDirectoryWithFailure(t *testing.T) {
	dir := t.TempDir()
	blackPNG(t, filepath.Join(dir, "ok.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("nope"), 0644))
	out := filepath.Join(t.TempDir(), "out")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-o", out, "-workers", "2", "-d", dir}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "bad.png")
	assert.FileExists(t, filepath.Join(out, "ok.png.txt"))
}

func TestRunInputErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no input", []string{}, 1},
		{"missing file", []string{"-f", filepath.Join(dir, "none.png")}, 1},
		{"not a directory", []string{"-d", filepath.Join(dir, "none")}, 1},
		{"bad flag", []string{"-nope"}, 2},
		{"bad color", []string{"-color", "zzz", dir}, 2},
		{"help", []string{"-help"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code)
			if tt.code == 1 {
				assert.Contains(t, stderr.String(), "Usage:")
			}
		})
	}
}

func TestRunShow(t *testing.T) {
	dir := t.TempDir()
	blackPNG(t, filepath.Join(dir, "a.png"))
	blackPNG(t, filepath.Join(dir, "b.png"))
	out := filepath.Join(t.TempDir(), "out")

	var shown []image.Image
	orig := showImage
	showImage = func(img image.Image) { shown = append(shown, img) }
	defer func() { showImage = orig }()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-o", out, "-w", "2", "-h", "1", "-d", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, shown)

	code = run(context.Background(), []string{"-o", out, "-w", "2", "-h", "1", "-show", "-d", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Len(t, shown, 2)

	// 2x1 cells of 3px dots at 4px pitch under a 10px label band
	b := shown[0].Bounds()
	assert.Equal(t, 17, b.Dx())
	assert.Equal(t, 27, b.Dy())
	r, g, bl, _ := shown[0].At(2, 12).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, bl})
}

func TestRunPreviewFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dark.png")
	blackPNG(t, in)
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "dark.png.preview.png"), 0755))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-o", out, "-w", "1", "-h", "1", "-preview", in}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Created ascii file")
	assert.Contains(t, stderr.String(), "No preview for")
	assert.NotContains(t, stderr.String(), "Failed to convert")
	assert.FileExists(t, filepath.Join(out, "dark.png.txt"))
}

func TestToANSI(t *testing.T) {
	c := toANSI(color.RGBA{0x12, 0x34, 0x56, 0xff})
	assert.Equal(t, uint8(0x12), c[0])
	assert.Equal(t, uint8(0x34), c[1])
	assert.Equal(t, uint8(0x56), c[2])
}
