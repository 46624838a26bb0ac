package main

import (
	"testing"

	"github.com/samuelyuan/go-tabletop/imagefile"
	"github.com/stretchr/testify/assert"
)

func TestToNRGBAExpandsRGB(t *testing.T) {
	img := &imagefile.Image{
		Pix:      []byte{10, 20, 30, 40, 50, 60},
		Width:    2,
		Height:   1,
		Channels: 3,
	}
	dst := ToNRGBA(img)
	assert.Equal(t, []byte{10, 20, 30, 255, 40, 50, 60, 255}, dst.Pix)
}

func TestToNRGBAKeepsAlpha(t *testing.T) {
	img := &imagefile.Image{
		Pix:      []byte{1, 2, 3, 4},
		Width:    1,
		Height:   1,
		Channels: 4,
	}
	assert.Equal(t, []byte{1, 2, 3, 4}, ToNRGBA(img).Pix)
}

func TestToNRGBAExpandsGray(t *testing.T) {
	img := &imagefile.Image{Pix: []byte{77}, Width: 1, Height: 1, Channels: 1}
	assert.Equal(t, []byte{77, 77, 77, 255}, ToNRGBA(img).Pix)
}

func TestToNRGBAExpandsGrayAlpha(t *testing.T) {
	img := &imagefile.Image{Pix: []byte{77, 9}, Width: 1, Height: 1, Channels: 2}
	assert.Equal(t, []byte{77, 77, 77, 9}, ToNRGBA(img).Pix)
}

func TestPreviewFitsSquare(t *testing.T) {
	img := &imagefile.Image{
		Pix:      make([]byte, 512*128*3),
		Width:    512,
		Height:   128,
		Channels: 3,
	}
	bounds := Preview(img, 256).Bounds()
	assert.Equal(t, 256, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())
}

func TestPreviewDoesNotUpscale(t *testing.T) {
	img := &imagefile.Image{Pix: make([]byte, 16*8*4), Width: 16, Height: 8, Channels: 4}
	bounds := Preview(img, 256).Bounds()
	assert.Equal(t, 16, bounds.Dx())
	assert.Equal(t, 8, bounds.Dy())
}
