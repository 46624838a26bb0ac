package main

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/samuelyuan/go-tabletop/imagefile"
)

// ToNRGBA rebuilds an image from tightly packed pixel rows. Gray and RGB
// pixels are expanded to opaque RGBA.
func ToNRGBA(img *imagefile.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	pixelCount := img.Width * img.Height
	for i := 0; i < pixelCount; i++ {
		src := img.Pix[i*img.Channels : (i+1)*img.Channels]
		out := dst.Pix[i*4 : i*4+4]
		switch img.Channels {
		case 1:
			out[0], out[1], out[2], out[3] = src[0], src[0], src[0], 255
		case 2:
			out[0], out[1], out[2], out[3] = src[0], src[0], src[0], src[1]
		case 3:
			out[0], out[1], out[2], out[3] = src[0], src[1], src[2], 255
		default:
			copy(out, src[:4])
		}
	}
	return dst
}

// Preview scales the texture down to fit in a size x size square, keeping
// its aspect ratio.
func Preview(img *imagefile.Image, size int) *image.NRGBA {
	src := ToNRGBA(img)
	filter := gift.New(
		gift.ResizeToFit(size, size, gift.LinearResampling),
	)
	dst := image.NewNRGBA(filter.Bounds(src.Bounds()))
	filter.Draw(dst, src)
	return dst
}
