// Package escape counts the iterations a point takes to leave the disk of radius 2.
package escape

import (
	"fmt"

	"github.com/willbeason/escape-fractal/pkg/transforms"
)

const (
	// Threshold is the squared escape radius. Comparing |z|^2 against it avoids a
	// square root per iteration.
	Threshold = 4.0

	DefaultLimit = 255
)

// Time iterates z = z*z + c from z = 0. It returns the 0-based step at which |z|^2
// first exceeds Threshold, or false if that does not happen within limit steps.
func Time(c complex128, limit int) (int, bool) {
	return quadratic(0, c, limit)
}

func quadratic(z, c complex128, limit int) (int, bool) {
	zr, zi := real(z), imag(z)
	cr, ci := real(c), imag(c)

	for i := 0; i < limit; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > Threshold {
			return i, true
		}
	}

	return 0, false
}

// Kernel runs a fractal's recurrence for single points.
type Kernel struct {
	Fractal transforms.Fractal
	Limit   int
}

// NewKernel returns a Mandelbrot kernel with the default limit.
func NewKernel() Kernel {
	return Kernel{Fractal: transforms.Mandelbrot(), Limit: DefaultLimit}
}

func (k Kernel) Validate() error {
	if k.Limit < 1 {
		return fmt.Errorf("iteration limit must be at least 1, got %d", k.Limit)
	}
	if k.Fractal.Transform == nil {
		return fmt.Errorf("fractal has no transform")
	}
	return nil
}

// Escape returns the step at which the orbit of pixel point p escapes, or false if
// it stays bounded for k.Limit steps.
func (k Kernel) Escape(p complex128) (int, bool) {
	z, c := k.Fractal.Start(p)

	if k.Fractal.Quadratic() {
		return quadratic(z, c, k.Limit)
	}

	t := k.Fractal.Transform
	for i := 0; i < k.Limit; i++ {
		z = t.Next(z, c)
		if real(z)*real(z)+imag(z)*imag(z) > Threshold {
			return i, true
		}
	}

	return 0, false
}

// Intensity is the grayscale value of a pixel: 255 for a point escaping at step 0,
// falling by one per step, and 0 for points that never escape.
func Intensity(step int, escaped bool) byte {
	if !escaped || step >= 255 {
		return 0
	}
	return byte(255 - step)
}
