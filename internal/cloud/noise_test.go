package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloud-gen/internal/core"
	rng "cloud-gen/pkg/core"
)

func TestNoiseFieldRange(t *testing.T) {
	field := NewNoiseField(64, rng.NewRNG(7))
	require.Equal(t, 64, field.W)
	require.Equal(t, 64, field.H)
	require.Len(t, field.Values(), 64*64)

	distinct := map[float64]struct{}{}
	for _, v := range field.Values() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		distinct[v] = struct{}{}
	}
	assert.Greater(t, len(distinct), 64*64/2, "field values should be independent draws")
}

func TestNoiseFieldDeterministic(t *testing.T) {
	a := NewNoiseField(16, rng.NewRNG(3))
	b := NewNoiseField(16, rng.NewRNG(3))
	c := NewNoiseField(16, rng.NewStream(3, 1))
	assert.Equal(t, a.Values(), b.Values())
	assert.NotEqual(t, a.Values(), c.Values())
}

func TestSampleIntegerCoordinateUsesPreviousCell(t *testing.T) {
	field := NewNoiseField(8, rng.NewRNG(11))
	assert.Equal(t, field.At(2, 4), Sample(field, 3, 5))
	assert.Equal(t, field.At(7, 7), Sample(field, 0, 0))
}

func TestSampleBilinearWeights(t *testing.T) {
	field := core.NewGrid(4, 4)
	field.Set(1, 1, 1.0)
	field.Set(0, 1, 0.5)
	field.Set(1, 0, 0.25)
	field.Set(0, 0, 0.0)

	// Base cell (1,1), previous cells (0,*) and (*,0).
	got := Sample(field, 1.25, 1.5)
	want := 0.25*0.5*1.0 + 0.75*0.5*0.5 + 0.25*0.5*0.25 + 0.75*0.5*0.0
	assert.InDelta(t, want, got, 1e-12)
}

func TestSamplePeriodic(t *testing.T) {
	const size = 8
	field := NewNoiseField(size, rng.NewRNG(5))
	points := [][2]float64{
		{3.25, 1.5},
		{-2.75, 6.125},
		{7.5, -0.5},
		{0, 0},
		{123.375, -45.625},
	}
	for _, p := range points {
		base := Sample(field, p[0], p[1])
		assert.GreaterOrEqual(t, base, 0.0)
		assert.Less(t, base, 1.0)
		for k := -3; k <= 3; k++ {
			shift := float64(k * size)
			assert.InDelta(t, base, Sample(field, p[0]+shift, p[1]), 1e-12, "x shift %v at %v", shift, p)
			assert.InDelta(t, base, Sample(field, p[0], p[1]+shift), 1e-12, "y shift %v at %v", shift, p)
		}
	}
}

func TestTurbulenceUnitScaleIsSingleSample(t *testing.T) {
	field := NewNoiseField(32, rng.NewRNG(9))
	for _, p := range [][2]float64{{0, 0}, {4.5, 17.25}, {31.75, 2}, {-3.5, 40}} {
		assert.Equal(t, 128*Sample(field, p[0], p[1]), Turbulence(field, p[0], p[1], 1))
	}
}

func TestTurbulenceConstantField(t *testing.T) {
	field := core.NewGrid(16, 16)
	for i := range field.Values() {
		field.Values()[i] = 0.5
	}
	// Scales 64..1 sum to 127, normalized by 128/64.
	assert.InDelta(t, 127.0, Turbulence(field, 10.3, 4.7, 64), 1e-9)
	assert.InDelta(t, 64.0, Turbulence(field, 10.3, 4.7, 1), 1e-9)
}
