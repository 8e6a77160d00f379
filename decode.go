package brailler

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errEmptyImage = errors.New("image has no pixels")

// Open decodes the image at path. Any failure, including a missing file,
// is returned as *ImageDecodeError.
func Open(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, &ImageDecodeError{Path: path, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &ImageDecodeError{Path: path, Err: errEmptyImage}
	}
	return img, nil
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &ImageDecodeError{Err: err}
	}
	if img.Bounds().Empty() {
		return nil, format, &ImageDecodeError{Err: errEmptyImage}
	}
	return img, format, nil
}

// RasterizeFile opens path and rasterizes it.
func RasterizeFile(path string, width, height int, includeSeparator bool) (string, error) {
	if err := checkDimensions(width, height); err != nil {
		return "", err
	}
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return Rasterize(img, width, height, includeSeparator)
}
