package body

import (
	"fmt"
	"math"
)

// Circle builds a circular surface of radius r centered at (xc, yc) with
// n evenly spaced points, traversed counterclockwise
func Circle(xc, yc, r float64, n int) (*Body, error) {
	if n <= 0 {
		return nil, fmt.Errorf("circle needs at least one point, got n=%d", n)
	}
	if r <= 0 {
		return nil, fmt.Errorf("circle radius must be positive, got %g", r)
	}
	b := newBody(n)
	ds := 2 * math.Pi * r / float64(n)
	for k := 0; k < n; k++ {
		th := 2 * math.Pi * float64(k) / float64(n)
		c, s := math.Cos(th), math.Sin(th)
		b.X[k] = xc + r*c
		b.Y[k] = yc + r*s
		b.Nx[k] = c
		b.Ny[k] = s
		b.DS[k] = ds
	}
	return b, nil
}

// Ellipse builds an elliptical surface with semi-axes a (x) and b (y)
// centered at (xc, yc), parameterized by n uniformly spaced angles
func Ellipse(xc, yc, a, bAxis float64, n int) (*Body, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ellipse needs at least one point, got n=%d", n)
	}
	if a <= 0 || bAxis <= 0 {
		return nil, fmt.Errorf("ellipse semi-axes must be positive, got a=%g b=%g", a, bAxis)
	}
	bd := newBody(n)
	dth := 2 * math.Pi / float64(n)
	for k := 0; k < n; k++ {
		th := dth * float64(k)
		c, s := math.Cos(th), math.Sin(th)
		bd.X[k] = xc + a*c
		bd.Y[k] = yc + bAxis*s
		// Outward normal is the normalized gradient of the implicit form
		nx, ny := bAxis*c, a*s
		nrm := math.Hypot(nx, ny)
		bd.Nx[k] = nx / nrm
		bd.Ny[k] = ny / nrm
		// Local parameterization speed times dtheta
		bd.DS[k] = math.Hypot(a*s, bAxis*c) * dth
	}
	return bd, nil
}

// Plate builds an open flat segment from (x1,y1) to (x2,y2) with n points
// at subsegment midpoints. The normal is the left normal of the traversal
// direction.
func Plate(x1, y1, x2, y2 float64, n int) (*Body, error) {
	if n <= 0 {
		return nil, fmt.Errorf("plate needs at least one point, got n=%d", n)
	}
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 {
		return nil, fmt.Errorf("plate endpoints coincide at (%g, %g)", x1, y1)
	}
	tx, ty := (x2-x1)/length, (y2-y1)/length
	b := newBody(n)
	ds := length / float64(n)
	for k := 0; k < n; k++ {
		s := (float64(k) + 0.5) * ds
		b.X[k] = x1 + s*tx
		b.Y[k] = y1 + s*ty
		b.Nx[k] = -ty
		b.Ny[k] = tx
		b.DS[k] = ds
	}
	return b, nil
}

func newBody(n int) *Body {
	return &Body{
		X:  make([]float64, n),
		Y:  make([]float64, n),
		Nx: make([]float64, n),
		Ny: make([]float64, n),
		DS: make([]float64, n),
	}
}
