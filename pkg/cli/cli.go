// Package cli holds the flags and the render-and-write step shared by the batch
// commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/output"
	"github.com/willbeason/escape-fractal/pkg/plane"
	"github.com/willbeason/escape-fractal/pkg/render"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

// Options are the flags common to every batch command.
type Options struct {
	Workers  int
	Limit    int
	Channels int
	Power    float64
	Verbose  bool
}

func DefaultOptions() Options {
	return Options{
		Workers:  render.DefaultWorkers(),
		Limit:    escape.DefaultLimit,
		Channels: 1,
		Power:    2,
	}
}

// Bind registers the options on flags, using the current values as defaults.
func (o *Options) Bind(flags *pflag.FlagSet) {
	flags.IntVarP(&o.Workers, "workers", "w", o.Workers, "number of bands rendered in parallel")
	flags.IntVarP(&o.Limit, "limit", "l", o.Limit, "iterations before a point counts as bounded")
	flags.IntVarP(&o.Channels, "channels", "c", o.Channels, "bytes per pixel: 1 for grayscale, 3 for RGB")
	flags.Float64VarP(&o.Power, "power", "p", o.Power, "exponent n of the recurrence z^n + c")
	flags.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "log each band")
}

func (o Options) Validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.Workers)
	}
	if o.Limit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", o.Limit)
	}
	if o.Power < 2 {
		return fmt.Errorf("--power must be at least 2, got %g", o.Power)
	}
	_, err := render.LayoutFor(o.Channels)
	return err
}

func (o Options) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Image is the file to write and the part of the plane it shows.
type Image struct {
	Path   string
	Bounds plane.Bounds
	Window plane.Window
}

// ParseImage reads FILE PIXELS UPPERLEFT LOWERRIGHT from the front of args.
func ParseImage(args []string) (Image, error) {
	if len(args) < 4 {
		return Image{}, fmt.Errorf("want FILE PIXELS UPPERLEFT LOWERRIGHT, got %d arguments", len(args))
	}

	if _, err := output.FormatFromPath(args[0]); err != nil {
		return Image{}, err
	}

	bounds, err := plane.ParseBounds(args[1])
	if err != nil {
		return Image{}, fmt.Errorf("parsing image dimensions: %w", err)
	}

	window, err := plane.ParseWindow(args[2], args[3])
	if err != nil {
		return Image{}, fmt.Errorf("parsing window: %w", err)
	}

	return Image{Path: args[0], Bounds: bounds, Window: window}, nil
}

// Run renders fractal over img and writes the result to img.Path.
func Run(ctx context.Context, logger *slog.Logger, img Image, fractal transforms.Fractal, o Options) error {
	layout, err := render.LayoutFor(o.Channels)
	if err != nil {
		return err
	}

	cfg := render.Config{
		Bounds: img.Bounds,
		Window: img.Window,
		Kernel: escape.Kernel{Fractal: fractal, Limit: o.Limit},
		Layout: layout,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobs := render.Plan(cfg, o.Workers)
	logger.Info("rendering",
		"bounds", img.Bounds,
		"upper_left", img.Window.UpperLeft,
		"lower_right", img.Window.LowerRight,
		"seed", fractal.Seed,
		"limit", o.Limit,
		"workers", o.Workers,
		"bands", len(jobs))
	for _, j := range jobs {
		logger.Debug("band",
			"top", j.Top,
			"rows", j.Rows,
			"upper_left", j.Window.UpperLeft,
			"lower_right", j.Window.LowerRight)
	}

	pixels := make([]byte, cfg.BufferLen())

	start := time.Now()
	if err := render.Render(ctx, pixels, cfg, o.Workers); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Info("rendered", "elapsed", time.Since(start))

	if err := output.WriteFile(img.Path, pixels, img.Bounds, o.Channels); err != nil {
		return err
	}
	logger.Info("wrote image", "path", img.Path)

	return nil
}
