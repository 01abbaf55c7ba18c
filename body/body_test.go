package body

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleGeometry(t *testing.T) {
	b, err := Circle(1, -2, 0.5, 64)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	var perim float64
	for k := 0; k < b.NumPoints(); k++ {
		perim += b.DS[k]
		// Point sits on the circle and the normal points radially out
		r := math.Hypot(b.X[k]-1, b.Y[k]+2)
		assert.InDelta(t, 0.5, r, 1e-12)
		assert.InDelta(t, (b.X[k]-1)/r, b.Nx[k], 1e-12)
		assert.InDelta(t, (b.Y[k]+2)/r, b.Ny[k], 1e-12)
	}
	assert.InDelta(t, math.Pi, perim, 1e-12)
}

func TestCircleRejectsDegenerate(t *testing.T) {
	if _, err := Circle(0, 0, 1, 0); err == nil {
		t.Errorf("expected error for zero points")
	}
	if _, err := Circle(0, 0, -1, 8); err == nil {
		t.Errorf("expected error for negative radius")
	}
}

func TestEllipsePerimeter(t *testing.T) {
	a, bAxis := 1.0, 0.5
	bd, err := Ellipse(0, 0, a, bAxis, 512)
	require.NoError(t, err)
	require.NoError(t, bd.Validate())

	var perim float64
	for k := range bd.DS {
		perim += bd.DS[k]
	}
	// Ramanujan's approximation for the ellipse perimeter
	h := (a - bAxis) * (a - bAxis) / ((a + bAxis) * (a + bAxis))
	ref := math.Pi * (a + bAxis) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	assert.InDelta(t, ref, perim, 1e-4)
}

func TestPlateGeometry(t *testing.T) {
	b, err := Plate(0, 0, 3, 4, 10)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	for k := range b.X {
		assert.InDelta(t, 0.5, b.DS[k], 1e-12)
		// Left normal of the (3,4)/5 direction
		assert.InDelta(t, -0.8, b.Nx[k], 1e-12)
		assert.InDelta(t, 0.6, b.Ny[k], 1e-12)
	}
}

func TestTransformRigidity(t *testing.T) {
	b, _ := Circle(0, 0, 1, 32)
	tr := Transform{DX: 2, DY: -1, Angle: math.Pi / 3}
	moved := tr.Apply(b)
	require.NoError(t, moved.Validate())

	// Pairwise distances and arclength weights survive a rigid motion
	for k := 1; k < b.NumPoints(); k++ {
		d0 := math.Hypot(b.X[k]-b.X[0], b.Y[k]-b.Y[0])
		d1 := math.Hypot(moved.X[k]-moved.X[0], moved.Y[k]-moved.Y[0])
		assert.InDelta(t, d0, d1, 1e-12)
		assert.InDelta(t, b.DS[k], moved.DS[k], 1e-15)
	}
	// Normals stay aligned with the radial direction from the new center
	for k := 0; k < moved.NumPoints(); k++ {
		rx, ry := moved.X[k]-2, moved.Y[k]+1
		assert.InDelta(t, rx, moved.Nx[k], 1e-12)
		assert.InDelta(t, ry, moved.Ny[k], 1e-12)
	}
}

func TestBodyListOrdering(t *testing.T) {
	b1, _ := Circle(-1, 0, 0.25, 16)
	b2, _ := Circle(1, 0, 0.25, 24)
	bl, err := NewBodyList(b1, b2)
	require.NoError(t, err)

	assert.Equal(t, 40, bl.NumPoints())
	lo, hi := bl.Range(0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 16, hi)
	lo, hi = bl.Range(1)
	assert.Equal(t, 16, lo)
	assert.Equal(t, 40, hi)

	x, _, _, _, _ := bl.Point(16)
	assert.InDelta(t, b2.X[0], x, 1e-15)
}

func TestBodyListRejectsEmpty(t *testing.T) {
	if _, err := NewBodyList(); err == nil {
		t.Errorf("expected error for empty list")
	}
	bad := &Body{X: []float64{0}, Y: []float64{0}, Nx: []float64{2}, Ny: []float64{0}, DS: []float64{0.1}}
	if _, err := NewBodyList(bad); err == nil {
		t.Errorf("expected error for non-unit normal")
	}
}
