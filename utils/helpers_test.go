package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMinMax(t *testing.T) {
	mn, mx := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, mn)
	assert.Equal(t, 7.0, mx)

	mn, mx = MinMax(nil)
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 0.0, mx)
}

func TestMatrixMinMax(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, -4, 2, 8, 0, -1})
	mn, mx := MatrixMinMax(m)
	assert.Equal(t, -4.0, mn)
	assert.Equal(t, 8.0, mx)

	mn, mx = MatrixMinMax(nil)
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 0.0, mx)
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite([]float64{1, 2, 3}))
	assert.False(t, AllFinite([]float64{1, math.NaN()}))
	assert.False(t, AllFinite([]float64{math.Inf(1)}))
	assert.True(t, AllFinite(nil))
}

func TestMaxAbsDiff(t *testing.T) {
	d := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	assert.Equal(t, 1.0, d)
}
