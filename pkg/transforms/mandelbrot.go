package transforms

import "math/cmplx"

// Quadratic is the recurrence z*z + c.
type Quadratic struct{}

func (Quadratic) Next(z, c complex128) complex128 {
	return z*z + c
}

// Power is the recurrence z^N + c.
type Power struct {
	N complex128
}

func (p Power) Next(z, c complex128) complex128 {
	return cmplx.Pow(z, p.N) + c
}

// Mandelbrot returns the Mandelbrot set: z starts at 0 and c is the pixel.
func Mandelbrot() Fractal {
	return Fractal{Seed: SeedOrigin, Transform: Quadratic{}}
}

// Multibrot generalizes Mandelbrot to z^n + c.
func Multibrot(n float64) Fractal {
	if n == 2 {
		return Mandelbrot()
	}
	return Fractal{Seed: SeedOrigin, Transform: Power{N: complex(n, 0)}}
}
