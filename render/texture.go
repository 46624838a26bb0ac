package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/samuelyuan/go-tabletop/imagefile"
)

// Texture is a GPU texture assigned to a fixed texture unit. Id is 0 when
// the image could not be loaded.
type Texture struct {
	Id   uint32
	Unit uint32
	Path string
}

func NewTexture(path string, unit uint32) *Texture {
	return &Texture{Path: path, Unit: unit}
}

var uploadFormats = map[imagefile.Layout]struct {
	internalFormat int32
	format         uint32
}{
	imagefile.LayoutRGB:  {gl.RGB8, gl.RGB},
	imagefile.LayoutRGBA: {gl.RGBA8, gl.RGBA},
}

// Upload sends the flipped image to the GPU, generates mipmaps and releases
// the CPU copy. The slot stays unbound if the layout is not supported.
func (t *Texture) Upload(img *imagefile.Image) error {
	layout, err := img.Layout()
	if err != nil {
		return err
	}
	upload := uploadFormats[layout]

	img.FlipVertical()

	var texId uint32
	gl.GenTextures(1, &texId)
	gl.BindTexture(gl.TEXTURE_2D, texId)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows of RGB images are not 4 byte aligned in general
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, upload.internalFormat, int32(img.Width), int32(img.Height),
		0, upload.format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	img.Release()

	gl.BindTexture(gl.TEXTURE_2D, 0)
	t.Id = texId
	return nil
}

// Bind makes this texture current on its unit
func (t *Texture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0 + t.Unit)
	gl.BindTexture(gl.TEXTURE_2D, t.Id)
}

func (t *Texture) Release() {
	if t.Id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.Id)
	t.Id = 0
}
