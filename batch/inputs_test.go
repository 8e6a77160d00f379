package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "one.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.txt"), []byte("x"), 0644))
	missing := filepath.Join(dir, "missing.png")

	tests := []struct {
		name    string
		cfg     Config
		want    []string
		wantErr error
	}{
		{"file", Config{File: file}, []string{file}, nil},
		{"dir lists everything", Config{Dir: dir}, []string{file, filepath.Join(dir, "two.txt")}, nil},
		{"positional", Config{Args: []string{file, "ignored"}}, []string{file}, nil},
		{"flag wins over positional", Config{File: file, Args: []string{missing}}, []string{file}, nil},
		{"nothing", Config{}, nil, ErrNoInput},
		{"both", Config{File: file, Dir: dir}, nil, ErrExclusive},
		{"missing file", Config{File: missing}, nil, os.ErrNotExist},
		{"file is dir", Config{File: dir}, nil, ErrNotFile},
		{"dir is file", Config{Dir: file}, nil, ErrNotDir},
		{"missing dir", Config{Dir: filepath.Join(dir, "nodir")}, nil, os.ErrNotExist},
		{"missing positional", Config{Args: []string{missing}}, nil, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveInputs(tt.cfg)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathErrorMessage(t *testing.T) {
	_, err := ResolveInputs(Config{File: "/no/such/file.png"})
	require.Error(t, err)
	assert.Equal(t, "'/no/such/file.png' does not exist", err.Error())

	dir := t.TempDir()
	_, err = ResolveInputs(Config{File: dir})
	assert.Equal(t, "'"+dir+"' is not a file", err.Error())
}

func TestSupported(t *testing.T) {
	for _, p := range []string{"a.png", "b.jpg", "C.JPG", "d.jpeg", "e.webp", "f.gif", "g.bmp", "h.tiff"} {
		assert.True(t, Supported(p), p)
	}
	for _, p := range []string{"a.txt", "png", "a.png.bak", "noext"} {
		assert.False(t, Supported(p), p)
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "cat.png.txt"), OutputPath("out", filepath.Join("imgs", "cat.png")))
	assert.Equal(t, filepath.Join("out", "cat.png.preview.png"), PreviewPath("out", "cat.png"))
}
