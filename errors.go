package brailler

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is matched by every *InvalidDimensionError.
var ErrInvalidDimension = errors.New("invalid dimension")

// InvalidDimensionError - a non-positive cell grid width or height
type InvalidDimensionError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %dx%d: width and height must be positive", e.Width, e.Height)
}

func (e *InvalidDimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

// ImageDecodeError - the image could not be opened or decoded
type ImageDecodeError struct {
	Path string // empty when decoding from a reader
	Err  error
}

func (e *ImageDecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode image: %v", e.Err)
	}
	return fmt.Sprintf("decode image %s: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Err
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return &InvalidDimensionError{Width: width, Height: height}
	}
	return nil
}
