package transforms

// A Transform advances the iterated point z of an escape-time recurrence, where c is
// the recurrence's fixed parameter.
type Transform interface {
	Next(z, c complex128) complex128
}

// Seed selects which operand of the recurrence comes from the pixel.
type Seed int

const (
	// SeedOrigin starts z at 0 and uses the pixel as c, as the Mandelbrot set does.
	SeedOrigin Seed = iota
	// SeedPixel starts z at the pixel and holds c constant, as Julia sets do.
	SeedPixel
)

func (s Seed) String() string {
	switch s {
	case SeedOrigin:
		return "origin"
	case SeedPixel:
		return "pixel"
	default:
		return "unknown"
	}
}

// Fractal is a recurrence together with how a pixel seeds it.
type Fractal struct {
	Seed Seed
	// C is the constant parameter. Only used when Seed is SeedPixel.
	C         complex128
	Transform Transform
}

// Start returns the initial z and the parameter c for the point p.
func (f Fractal) Start(p complex128) (z, c complex128) {
	if f.Seed == SeedPixel {
		return p, f.C
	}
	return 0, p
}

// Quadratic reports whether the recurrence is z*z + c.
func (f Fractal) Quadratic() bool {
	_, ok := f.Transform.(Quadratic)
	return ok
}

var (
	_ Transform = Quadratic{}
	_ Transform = Power{}
)
