package transforms

// Julia returns the filled Julia set of z*z + c: z starts at the pixel.
func Julia(c complex128) Fractal {
	return Fractal{Seed: SeedPixel, C: c, Transform: Quadratic{}}
}

// MultiJulia is the Julia set of z^n + c.
func MultiJulia(c complex128, n float64) Fractal {
	if n == 2 {
		return Julia(c)
	}
	return Fractal{Seed: SeedPixel, C: c, Transform: Power{N: complex(n, 0)}}
}
