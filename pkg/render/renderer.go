package render

import (
	"context"

	"github.com/willbeason/escape-fractal/pkg/plane"
)

// Renderer redraws an image into the same buffer as its window or size changes, for
// callers such as display loops that render many frames.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg     Config
	workers int
	pixels  []byte
}

func NewRenderer(cfg Config, workers int) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = DefaultWorkers()
	}

	return &Renderer{
		cfg:     cfg,
		workers: workers,
		pixels:  make([]byte, cfg.BufferLen()),
	}, nil
}

func (r *Renderer) Config() Config {
	return r.cfg
}

func (r *Renderer) Workers() int {
	return r.workers
}

// SetWindow moves the renderer to w. The next Frame draws it.
func (r *Renderer) SetWindow(w plane.Window) error {
	if err := w.Validate(); err != nil {
		return err
	}
	r.cfg.Window = w
	return nil
}

// Resize changes the image size, reallocating the buffer only when it must grow.
func (r *Renderer) Resize(b plane.Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	r.cfg.Bounds = b

	n := r.cfg.BufferLen()
	if n > cap(r.pixels) {
		r.pixels = make([]byte, n)
	}
	r.pixels = r.pixels[:n]
	return nil
}

// Frame renders the current window. The returned slice is reused by the next call to
// Frame.
func (r *Renderer) Frame(ctx context.Context) ([]byte, error) {
	if err := Render(ctx, r.pixels, r.cfg, r.workers); err != nil {
		return nil, err
	}
	return r.pixels, nil
}
