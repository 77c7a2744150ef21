package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDefaultThresholds(t *testing.T) {
	r, err := NewResolver(DefaultThresholds, Table{Narrow: 1, Medium: 2, Wide: 3})
	require.NoError(t, err)

	cases := []struct {
		width int
		want  Breakpoint
	}{
		{-10, Narrow},
		{0, Narrow},
		{1, Narrow},
		{639, Narrow},
		{640, Medium},
		{1023, Medium},
		{1024, Wide},
		{5000, Wide},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.Classify(tc.width), "width %d", tc.width)
	}
}

func TestClassifyExtraWideTier(t *testing.T) {
	r, err := NewResolver(Thresholds{Medium: 640, Wide: 1024, ExtraWide: 1280}, Table{Narrow: 1, Medium: 2, Wide: 3, ExtraWide: 4})
	require.NoError(t, err)

	assert.Equal(t, Wide, r.Classify(1279))
	assert.Equal(t, ExtraWide, r.Classify(1280))

	bp, n := r.Resolve(1400)
	assert.Equal(t, ExtraWide, bp)
	assert.Equal(t, 4, n)
	assert.Len(t, r.Tiers(), 4)
}

func TestZeroWidthResolvesToNarrowestPage(t *testing.T) {
	r, err := NewResolver(DefaultThresholds, Table{Narrow: 2, Medium: 3, Wide: 4})
	require.NoError(t, err)

	bp, n := r.Resolve(0)
	assert.Equal(t, Narrow, bp)
	assert.Equal(t, 2, n)
}

func TestTableNormalize(t *testing.T) {
	got := Table{Narrow: 0, Wide: -3}.Normalize()

	assert.Equal(t, 1, got[Narrow])
	assert.Equal(t, 1, got[Medium], "missing tier inherits narrower tier")
	assert.Equal(t, 1, got[Wide], "values below one are raised to one")
	assert.Equal(t, 1, got[ExtraWide])

	got = Table{Narrow: 1, Medium: 2, Wide: 3}.Normalize()
	assert.Equal(t, 3, got[ExtraWide])
}

func TestThresholdValidation(t *testing.T) {
	bad := []Thresholds{
		{Medium: 0, Wide: 100},
		{Medium: 100, Wide: 100},
		{Medium: 100, Wide: 50},
		{Medium: 100, Wide: 200, ExtraWide: 150},
	}
	for _, th := range bad {
		_, err := NewResolver(th, nil)
		require.Error(t, err, "%+v", th)
		assert.True(t, errors.Is(err, ErrThresholdOrder))
	}

	require.NoError(t, Thresholds{Medium: 80, Wide: 120, ExtraWide: 160}.Validate())
}

func TestEmptyTableYieldsOnePerPage(t *testing.T) {
	r, err := NewResolver(DefaultThresholds, nil)
	require.NoError(t, err)
	for _, bp := range r.Tiers() {
		assert.Equal(t, 1, r.ItemsPerPage(bp))
	}
}

func TestParseBreakpoint(t *testing.T) {
	for _, bp := range []Breakpoint{Narrow, Medium, Wide, ExtraWide} {
		got, err := ParseBreakpoint(bp.String())
		require.NoError(t, err)
		assert.Equal(t, bp, got)
	}
	_, err := ParseBreakpoint("huge")
	assert.Error(t, err)
}
