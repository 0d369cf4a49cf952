// Package render draws escape-time fractals into byte buffers, one goroutine per
// horizontal band of the image.
package render

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/escape-fractal/pkg/band"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/plane"
)

var ErrBufferLength = errors.New("pixel buffer has the wrong length")

// Config describes one image. It is read concurrently by every band's goroutine and
// must not change while a render is running.
type Config struct {
	Bounds plane.Bounds
	Window plane.Window
	Kernel escape.Kernel
	Layout Layout
}

func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if err := c.Kernel.Validate(); err != nil {
		return err
	}
	if c.Layout == nil {
		return errors.New("no pixel layout")
	}
	if channels := c.Layout.Channels(); c.Bounds.Width*c.Bounds.Height > math.MaxInt/channels {
		return fmt.Errorf("%w: %v image with %d channels overflows int", plane.ErrBounds, c.Bounds, channels)
	}
	return nil
}

// Stride is the number of bytes in one row of the image.
func (c Config) Stride() int {
	return c.Bounds.Width * c.Layout.Channels()
}

// BufferLen is the number of bytes the whole image needs.
func (c Config) BufferLen() int {
	return c.Stride() * c.Bounds.Height
}

// ContractError reports a buffer whose length does not fit the image it should hold.
type ContractError struct {
	Want, Got int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%v: want %d bytes, got %d", ErrBufferLength, e.Want, e.Got)
}

func (e *ContractError) Unwrap() error {
	return ErrBufferLength
}

// WorkerError is a panic recovered from the goroutine rendering Span.
type WorkerError struct {
	Span  band.Span
	Value any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("rendering rows %d-%d: %v", e.Span.Top, e.Span.End(), e.Value)
}

func (e *WorkerError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// DefaultWorkers is the number of bands to render in parallel when the caller does not
// choose one.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// RenderBand draws the rows of b. b.Pixels must hold exactly b.Rows rows of the
// image; RenderBand panics with a *ContractError otherwise.
func RenderBand(b band.Band, cfg Config) {
	stride := cfg.Stride()
	if want := stride * b.Rows; len(b.Pixels) != want {
		panic(&ContractError{Want: want, Got: len(b.Pixels)})
	}

	strip := plane.Strip{Bounds: cfg.Bounds, Window: cfg.Window, Top: b.Top}
	channels := cfg.Layout.Channels()

	for row := 0; row < b.Rows; row++ {
		offset := row * stride
		for col := 0; col < cfg.Bounds.Width; col++ {
			step, escaped := cfg.Kernel.Escape(strip.At(col, row))
			cfg.Layout.Put(b.Pixels, offset, escape.Intensity(step, escaped))
			offset += channels
		}
	}
}

// Job is a band of the image and the part of the plane it covers.
type Job struct {
	band.Span
	Window plane.Window
}

// Plan returns the bands Render splits the image into for the given worker count.
// The windows are for reporting only: Render maps each band's rows through the whole
// image's window so that bands join bit-for-bit.
func Plan(cfg Config, workers int) []Job {
	spans := band.Partition(cfg.Bounds.Height, workers)

	jobs := make([]Job, len(spans))
	for i, s := range spans {
		jobs[i] = Job{Span: s, Window: cfg.Window.Sub(cfg.Bounds, s.Top, s.Rows)}
	}
	return jobs
}

// Render draws the image described by cfg into pixels, splitting it into at most
// workers bands rendered concurrently. It returns once every band's goroutine has
// finished. If any of them panicked, Render returns the joined *WorkerErrors and the
// contents of pixels are undefined.
//
// ctx is only checked before rendering starts; a render in progress runs to
// completion.
func Render(ctx context.Context, pixels []byte, cfg Config, workers int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", workers)
	}
	if want := cfg.BufferLen(); len(pixels) != want {
		return &ContractError{Want: want, Got: len(pixels)}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	bands := band.Split(pixels, cfg.Stride(), cfg.Bounds.Height, workers)
	errs := make([]error, len(bands))

	var g errgroup.Group
	for i, b := range bands {
		g.Go(func() error {
			errs[i] = renderRecovered(b, cfg)
			return errs[i]
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(errs...)
	}
	return nil
}

func renderRecovered(b band.Band, cfg Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerError{Span: b.Span, Value: r}
		}
	}()

	RenderBand(b, cfg)
	return nil
}
