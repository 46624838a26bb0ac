package imagefile

// Layout is the pixel layout a texture is uploaded with
type Layout int

const (
	LayoutRGB Layout = iota
	LayoutRGBA
)

// LayoutFor maps a channel count to an upload layout. Only 3 and 4 channel
// images are accepted.
func LayoutFor(channels int) (Layout, error) {
	switch channels {
	case 3:
		return LayoutRGB, nil
	case 4:
		return LayoutRGBA, nil
	}
	return 0, &UnsupportedChannelLayoutError{Channels: channels}
}

func (l Layout) Channels() int {
	if l == LayoutRGBA {
		return 4
	}
	return 3
}

func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutRGBA:
		return "RGBA"
	}
	return "unknown"
}
