package render

import "fmt"

// A Layout writes one pixel's intensity into a buffer.
type Layout interface {
	// Channels is the number of bytes per pixel.
	Channels() int
	// Put writes v to the pixel that starts at dst[offset].
	Put(dst []byte, offset int, v byte)
}

// Gray is one byte per pixel.
type Gray struct{}

func (Gray) Channels() int { return 1 }

func (Gray) Put(dst []byte, offset int, v byte) {
	dst[offset] = v
}

// RGB is three bytes per pixel, with the intensity written to each.
type RGB struct{}

func (RGB) Channels() int { return 3 }

func (RGB) Put(dst []byte, offset int, v byte) {
	px := dst[offset : offset+3 : offset+3]
	px[0], px[1], px[2] = v, v, v
}

// LayoutFor returns the layout with the given number of channels.
func LayoutFor(channels int) (Layout, error) {
	switch channels {
	case 1:
		return Gray{}, nil
	case 3:
		return RGB{}, nil
	default:
		return nil, fmt.Errorf("unsupported channel count %d, want 1 or 3", channels)
	}
}
