package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMinMax(t *testing.T) {
	got := NormalizeMinMax([]float64{2, 4, 6}, false)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, got, 1e-9)
}

func TestNormalizeMinMaxInverted(t *testing.T) {
	got := NormalizeMinMax([]float64{2, 4, 6}, true)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0}, got, 1e-9)
}

func TestNormalizeMinMaxEqualValues(t *testing.T) {
	got := NormalizeMinMax([]float64{3, 3, 3}, false)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5}, got, 1e-9)
}

func TestNormalizeMinMaxEmpty(t *testing.T) {
	assert.Nil(t, NormalizeMinMax(nil, false))
}
