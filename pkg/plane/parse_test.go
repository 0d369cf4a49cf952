package plane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair_Int(t *testing.T) {
	tcs := []struct {
		s      string
		sep    byte
		wantL  int
		wantR  int
		wantOk bool
	}{
		{"", ',', 0, 0, false},
		{" ", ' ', 0, 0, false},
		{"10,", ',', 0, 0, false},
		{",10", ',', 0, 0, false},
		{",", ',', 0, 0, false},
		{"10,10", 'x', 0, 0, false},
		{"10.0,10", ',', 0, 0, false},
		{"10,10", ',', 10, 10, true},
		{"10,5", ',', 10, 5, true},
		{"1000x750", 'x', 1000, 750, true},
	}

	for _, tc := range tcs {
		t.Run(tc.s, func(t *testing.T) {
			l, r, ok := ParsePair[int](tc.s, tc.sep)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.wantL, l)
			assert.Equal(t, tc.wantR, r)
		})
	}
}

func TestParsePair_Float(t *testing.T) {
	l, r, ok := ParsePair[float64]("10.10x3.23", 'x')
	require.True(t, ok)
	assert.Equal(t, 10.10, l)
	assert.Equal(t, 3.23, r)

	_, _, ok = ParsePair[float64]("10.10x", 'x')
	assert.False(t, ok)
}

func TestParseComplex(t *testing.T) {
	got, err := ParseComplex("1.25,-0.0625")
	require.NoError(t, err)
	assert.Equal(t, complex(1.25, -0.0625), got)

	_, err = ParseComplex(",-0.0625")
	assert.ErrorIs(t, err, ErrMalformedPair)
}

func TestParseBounds(t *testing.T) {
	got, err := ParseBounds("1000x750")
	require.NoError(t, err)
	assert.Equal(t, Bounds{Width: 1000, Height: 750}, got)

	_, err = ParseBounds("1000,750")
	assert.ErrorIs(t, err, ErrMalformedPair)

	_, err = ParseBounds("0x750")
	assert.ErrorIs(t, err, ErrBounds)

	_, err = ParseBounds("3037000500x3037000500")
	assert.ErrorIs(t, err, ErrBounds)
}

func TestParseWindow(t *testing.T) {
	got, err := ParseWindow("-1.25,0.32", "-1,0.20")
	require.NoError(t, err)
	assert.Equal(t, Window{UpperLeft: complex(-1.25, 0.32), LowerRight: complex(-1, 0.20)}, got)

	_, err = ParseWindow("-1,0.20", "-1.25,0.32")
	assert.ErrorIs(t, err, ErrWindow)

	_, err = ParseWindow("-1.25;0.32", "-1,0.20")
	assert.ErrorIs(t, err, ErrMalformedPair)
	assert.ErrorContains(t, err, "upper left")
}
