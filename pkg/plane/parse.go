package plane

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedPair = errors.New("malformed coordinate pair")

// ParsePair splits s at the first sep and parses both sides as T, so "800x600" with
// sep 'x' gives (800, 600). ok is false if sep is missing, leads, or trails s, or if
// either side does not parse.
func ParsePair[T int | float64](s string, sep byte) (T, T, bool) {
	var zero T

	i := strings.IndexByte(s, sep)
	if i <= 0 || i == len(s)-1 {
		return zero, zero, false
	}

	l, err := parseNumber[T](s[:i])
	if err != nil {
		return zero, zero, false
	}
	r, err := parseNumber[T](s[i+1:])
	if err != nil {
		return zero, zero, false
	}

	return l, r, true
}

func parseNumber[T int | float64](s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return v, err
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		*p = f
	}
	return v, nil
}

// ParseBounds parses image dimensions such as "1000x750".
func ParseBounds(s string) (Bounds, error) {
	w, h, ok := ParsePair[int](s, 'x')
	if !ok {
		return Bounds{}, fmt.Errorf("%w: bounds %q, want WIDTHxHEIGHT", ErrMalformedPair, s)
	}

	b := Bounds{Width: w, Height: h}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// ParseComplex parses a point such as "-1.25,0.32".
func ParseComplex(s string) (complex128, error) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, fmt.Errorf("%w: point %q, want RE,IM", ErrMalformedPair, s)
	}
	return complex(re, im), nil
}

// ParseWindow parses the upper left and lower right corners of a window.
func ParseWindow(upperLeft, lowerRight string) (Window, error) {
	ul, err := ParseComplex(upperLeft)
	if err != nil {
		return Window{}, fmt.Errorf("upper left: %w", err)
	}
	lr, err := ParseComplex(lowerRight)
	if err != nil {
		return Window{}, fmt.Errorf("lower right: %w", err)
	}

	w := Window{UpperLeft: ul, LowerRight: lr}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}
