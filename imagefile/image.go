package imagefile

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Register decoders with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"
)

// filetype needs at most this many bytes to identify a format
const sniffLength = 262

const (
	// Offset of the color type byte: signature, chunk length, "IHDR", width,
	// height, bit depth
	pngColorTypeOffset = 25
	pngColorGrayAlpha  = 4
)

// Image is a decoded, tightly packed, row-major pixel buffer
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Load reads and decodes the image file at path
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		if decodeErr, ok := err.(*DecodeError); ok {
			decodeErr.Path = path
		}
		return nil, err
	}
	return img, nil
}

// Decode sniffs the stream to make sure it holds an image and decodes it
// keeping the channel count of the source format.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReaderSize(r, sniffLength)
	header, err := br.Peek(sniffLength)
	if err != nil && err != io.EOF {
		return nil, &DecodeError{Err: err}
	}
	if len(header) == 0 {
		return nil, &DecodeError{Err: ErrEmptyFile}
	}

	kind, err := filetype.Match(header)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, &DecodeError{Err: fmt.Errorf("%w: detected %q", ErrNotAnImage, kind.MIME.Value)}
	}

	decoded, _, err := image.Decode(br)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%s: %w", kind.Extension, err)}
	}

	// image/png widens gray+alpha to NRGBA, so the stored layout is read
	// from the header
	if kind.Extension == "png" && isGrayAlphaPNG(header) {
		return pack(decoded, 2), nil
	}
	return FromImage(decoded), nil
}

func isGrayAlphaPNG(header []byte) bool {
	return len(header) > pngColorTypeOffset && header[pngColorTypeOffset] == pngColorGrayAlpha
}

// FromImage packs any image.Image into a pixel buffer
func FromImage(src image.Image) *Image {
	return pack(src, channelsOf(src))
}

func pack(src image.Image, channels int) *Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pix := make([]byte, width*height*channels)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			switch channels {
			case 1:
				pix[i] = color.GrayModel.Convert(color.NRGBA{c.R, c.G, c.B, 255}).(color.Gray).Y
			case 2:
				pix[i+0] = color.GrayModel.Convert(color.NRGBA{c.R, c.G, c.B, 255}).(color.Gray).Y
				pix[i+1] = c.A
			case 3:
				pix[i+0] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
			case 4:
				pix[i+0] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
				pix[i+3] = c.A
			}
			i += channels
		}
	}

	return &Image{
		Pix:      pix,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Native channel count of the decoded image. PNG decodes truecolor without
// alpha into *image.RGBA, so those are only RGBA when actually translucent.
func channelsOf(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return 3
	}
	return 4
}

// Layout returns the upload layout for this image
func (img *Image) Layout() (Layout, error) {
	return LayoutFor(img.Channels)
}

// Stride is the number of bytes in one row
func (img *Image) Stride() int {
	return img.Width * img.Channels
}

// FlipVertical swaps row j with row height-1-j in place, for every row above
// the midline. Applying it twice restores the original buffer.
func (img *Image) FlipVertical() {
	stride := img.Stride()
	for j := 0; j < img.Height/2; j++ {
		top := img.Pix[j*stride : (j+1)*stride]
		bottom := img.Pix[(img.Height-1-j)*stride : (img.Height-j)*stride]
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// Release drops the CPU side pixel buffer once it has been uploaded
func (img *Image) Release() {
	img.Pix = nil
}
