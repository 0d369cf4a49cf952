// Package band splits an image into horizontal bands that can be rendered
// independently.
package band

import "fmt"

// Span is the rows [Top, Top+Rows) of an image.
type Span struct {
	Top, Rows int
}

func (s Span) End() int {
	return s.Top + s.Rows
}

// Partition divides rows [0, height) into at most workers consecutive spans of
// ceil(height/workers) rows each, the last possibly shorter. Empty spans are not
// returned, so fewer spans than workers come back when height is small.
func Partition(height, workers int) []Span {
	if workers < 1 {
		panic(fmt.Sprintf("band: worker count must be at least 1, got %d", workers))
	}
	if height <= 0 {
		return nil
	}

	rowsPerBand := height / workers
	if height%workers != 0 {
		rowsPerBand++
	}

	n := height / rowsPerBand
	if height%rowsPerBand != 0 {
		n++
	}

	spans := make([]Span, n)
	for i := range spans {
		top := i * rowsPerBand
		spans[i] = Span{Top: top, Rows: min(rowsPerBand, height-top)}
	}

	return spans
}

// Band is a span of rows together with the bytes of the image that hold them.
type Band struct {
	Span
	Pixels []byte
}

// Split partitions pixels, an image of height rows of stride bytes each, into bands.
// The returned slices do not overlap and are capped at their own length, so each can
// be handed to a different goroutine.
//
// Split panics if len(pixels) is not stride*height.
func Split(pixels []byte, stride, height, workers int) []Band {
	if stride < 1 || height < 1 || len(pixels) != stride*height {
		panic(fmt.Sprintf("band: buffer of %d bytes cannot hold %d rows of %d bytes",
			len(pixels), height, stride))
	}

	spans := Partition(height, workers)
	bands := make([]Band, len(spans))
	for i, s := range spans {
		lo, hi := s.Top*stride, s.End()*stride
		bands[i] = Band{Span: s, Pixels: pixels[lo:hi:hi]}
	}

	return bands
}
