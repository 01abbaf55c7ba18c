package body

import "math"

// Transform is a rigid-body motion: rotation by Angle (radians,
// counterclockwise) about the pivot, followed by translation by (DX, DY)
type Transform struct {
	DX, DY float64
	Angle  float64
	// Pivot of the rotation; defaults to the origin
	PX, PY float64
}

// Apply returns a new Body moved by the transform. Normals rotate with
// the surface; arclength weights are invariant under rigid motion.
func (t Transform) Apply(b *Body) *Body {
	n := b.NumPoints()
	out := newBody(n)
	c, s := math.Cos(t.Angle), math.Sin(t.Angle)
	for k := 0; k < n; k++ {
		x, y := b.X[k]-t.PX, b.Y[k]-t.PY
		out.X[k] = t.PX + c*x - s*y + t.DX
		out.Y[k] = t.PY + s*x + c*y + t.DY
		out.Nx[k] = c*b.Nx[k] - s*b.Ny[k]
		out.Ny[k] = s*b.Nx[k] + c*b.Ny[k]
		out.DS[k] = b.DS[k]
	}
	return out
}
