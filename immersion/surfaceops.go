package immersion

import (
	"github.com/nlowes/layerpot/body"
	"github.com/nlowes/layerpot/grid"
	"github.com/notargets/gocfd/utils"
)

// Operators bundles the surface differential operators over one fixed
// grid/surface pairing. Orientation convention: the tangent t is the
// outward normal n rotated a quarter turn counterclockwise, t = (-ny, nx),
// which makes CurlSpread(q) == -CrossDivSpread(q) identically.
type Operators struct {
	Grid   *grid.Grid
	Bodies *body.BodyList
	Reg    *Regularizer
}

// NewOperators builds the regularizer and operator set for the geometry
func NewOperators(g *grid.Grid, bl *body.BodyList, kernel Kernel) (*Operators, error) {
	reg, err := NewRegularizer(g, bl, kernel)
	if err != nil {
		return nil, err
	}
	return &Operators{Grid: g, Bodies: bl, Reg: reg}, nil
}

// NumPoints returns the canonical surface point count
func (op *Operators) NumPoints() int { return op.Reg.NumPoints() }

// NewSurfaceField allocates a zero surface field in canonical ordering
func (op *Operators) NewSurfaceField() utils.Vector { return op.Reg.NewSurfaceField() }

// NormalDeriv interpolates the gradient of f to the surface and projects
// it on the outward normal: the discrete n.grad(f), averaging the two
// sides of any jump carried by f
func (op *Operators) NormalDeriv(f grid.Field) utils.Vector {
	return op.projectGradient(f, false)
}

// CrossDeriv interpolates the gradient of f to the surface and projects
// it on the tangent: the discrete t.grad(f), the surface component of
// n x grad(f)
func (op *Operators) CrossDeriv(f grid.Field) utils.Vector {
	return op.projectGradient(f, true)
}

func (op *Operators) projectGradient(f grid.Field, tangent bool) utils.Vector {
	grad := op.Grid.Gradient(f)
	gx := op.Reg.Interp(grad.X)
	gy := op.Reg.Interp(grad.Y)
	out := op.NewSurfaceField()
	for k := range out.DataP {
		st := &op.Reg.stencils[k]
		ex, ey := st.nx, st.ny
		if tangent {
			ex, ey = -st.ny, st.nx
		}
		out.DataP[k] = ex*gx.DataP[k] + ey*gy.DataP[k]
	}
	return out
}

// DivSpread spreads q along the normals and takes the grid divergence:
// div(R(q n)), the double-layer forcing of the potential
func (op *Operators) DivSpread(q utils.Vector) grid.Field {
	return op.Grid.Divergence(op.Reg.SpreadNormal(q))
}

// CurlSpread spreads q along the normals and takes the scalar curl:
// curl(R(q n)), the double-layer forcing of the streamfunction
func (op *Operators) CurlSpread(q utils.Vector) grid.Field {
	return op.Grid.ScalarCurl(op.Reg.SpreadNormal(q))
}

// CrossDivSpread spreads q along the tangents and takes the divergence:
// div(R(q t)), the adjoint of CrossDeriv. Equal to -CurlSpread(q) under
// the orientation convention above.
func (op *Operators) CrossDivSpread(q utils.Vector) grid.Field {
	return op.Grid.Divergence(op.Reg.SpreadTangent(q))
}

// RnApply evaluates the local coupling Rn^T Rn: spread q along the
// normals, interpolate back, and project on the normals
func (op *Operators) RnApply(q utils.Vector) utils.Vector {
	v := op.Reg.SpreadNormal(q)
	gx := op.Reg.Interp(v.X)
	gy := op.Reg.Interp(v.Y)
	out := op.NewSurfaceField()
	for k := range out.DataP {
		st := &op.Reg.stencils[k]
		out.DataP[k] = st.nx*gx.DataP[k] + st.ny*gy.DataP[k]
	}
	return out
}
