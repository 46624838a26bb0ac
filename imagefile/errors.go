package imagefile

import (
	"errors"
	"fmt"
)

var (
	ErrNotAnImage = errors.New("not an image")
	ErrEmptyFile  = errors.New("empty file")
)

// DecodeError is returned when a texture file is missing, unreadable or
// cannot be decoded as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("image decode: %v", e.Err)
	}
	return fmt.Sprintf("image decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedChannelLayoutError is returned for images that are neither RGB nor RGBA.
type UnsupportedChannelLayoutError struct {
	Channels int
}

func (e *UnsupportedChannelLayoutError) Error() string {
	return fmt.Sprintf("unsupported channel layout: %d channels", e.Channels)
}
