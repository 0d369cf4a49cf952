// Package plane maps pixel coordinates onto a rectangular window of the complex plane.
package plane

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrBounds = errors.New("invalid image bounds")
	ErrWindow = errors.New("plane window is degenerate or inverted")
)

// Bounds is the size of an image in pixels.
type Bounds struct {
	Width, Height int
}

func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBounds, b.Width, b.Height)
	}
	if b.Width > math.MaxInt/b.Height {
		return fmt.Errorf("%w: %dx%d pixels overflow int", ErrBounds, b.Width, b.Height)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Window is the region of the complex plane an image covers.
//
// The real axis increases to the right and the imaginary axis increases upward,
// so UpperLeft has the smaller real part and the larger imaginary part.
type Window struct {
	UpperLeft, LowerRight complex128
}

func (w Window) Validate() error {
	if !(real(w.LowerRight) > real(w.UpperLeft)) || !(imag(w.UpperLeft) > imag(w.LowerRight)) {
		return fmt.Errorf("%w: upper left %v, lower right %v", ErrWindow, w.UpperLeft, w.LowerRight)
	}
	return nil
}

// PixelToPoint returns the point of the plane at pixel (col, row).
//
// col may equal b.Width and row may equal b.Height, which gives the far edges of the
// window. Row increases downward while the imaginary axis increases upward.
func PixelToPoint(b Bounds, col, row int, w Window) complex128 {
	width := real(w.LowerRight) - real(w.UpperLeft)
	height := imag(w.UpperLeft) - imag(w.LowerRight)

	return complex(
		real(w.UpperLeft)+float64(col)*width/float64(b.Width),
		imag(w.UpperLeft)-float64(row)*height/float64(b.Height),
	)
}

// Sub returns the window covered by rows [top, top+rows) of an image of size b drawn
// over w. The corners are mapped against the full image, so adjacent sub-windows share
// their edges exactly.
func (w Window) Sub(b Bounds, top, rows int) Window {
	return Window{
		UpperLeft:  PixelToPoint(b, 0, top, w),
		LowerRight: PixelToPoint(b, b.Width, top+rows, w),
	}
}

// Strip addresses the rows of an image that start at Top, mapping them with the
// image's own bounds and window. Pixels of a strip land on exactly the points the
// whole image would give them, so strips rendered separately join without seams.
type Strip struct {
	Bounds Bounds
	Window Window
	Top    int
}

// At returns the point of the plane at column col of the strip's local row row.
func (s Strip) At(col, row int) complex128 {
	return PixelToPoint(s.Bounds, col, s.Top+row, s.Window)
}
