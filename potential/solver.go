package potential

import (
	"fmt"

	"github.com/nlowes/layerpot/body"
	"github.com/nlowes/layerpot/grid"
	"github.com/nlowes/layerpot/utils"

	gutils "github.com/notargets/gocfd/utils"
)

// Solve performs the two-stage block elimination for double-valued
// Neumann data. vnplus and vnminus are the exterior and interior normal
// derivative targets in the cache's canonical surface ordering. It
// returns the potential field f, its surface jump df = f_ext - f_int,
// the streamfunction field s, and the streamfunction jump ds. Outputs
// are freshly allocated and caller-owned; the inputs are not mutated.
//
// The stages are:
//  1. split the data into average vn and jump dvn
//  2. fstar = Linv(R(dvn)), the single-layer contribution
//  3. solve S*df = -(vn - Gs(fstar)) for the potential jump
//  4. f = fstar + Linv(Ds(df))
//  5. ds = Sinv(Ts(fstar)); s = Linv(-(Dt(ds) - Cs(df)))
//
// The trailing sign in stage 5 follows from the tangent orientation
// t = (-ny, nx), under which Cs = -Dt (see immersion.Operators).
func Solve(vnplus, vnminus gutils.Vector, c *Cache) (f grid.Field, df gutils.Vector, s grid.Field, ds gutils.Vector, err error) {
	n := c.NumPoints()
	if len(vnplus.DataP) != n || len(vnminus.DataP) != n {
		err = fmt.Errorf("%w: got %d/%d points, cache has %d",
			ErrDimensionMismatch, len(vnplus.DataP), len(vnminus.DataP), n)
		return
	}
	if !utils.AllFinite(vnplus.DataP) || !utils.AllFinite(vnminus.DataP) {
		err = fmt.Errorf("%w: boundary data contains non-finite values", ErrNumericalFailure)
		return
	}

	c.reset()

	// Stage 1: average and jump of the boundary data
	for k := 0; k < n; k++ {
		c.vn.DataP[k] = 0.5 * (vnplus.DataP[k] + vnminus.DataP[k])
		c.dvn.DataP[k] = vnplus.DataP[k] - vnminus.DataP[k]
	}

	// Stage 2: single-layer intermediate fstar = Linv(R(dvn))
	c.Ops.Reg.SpreadTo(c.rhs, c.dvn)
	fstar, err := c.Solver.Solve(c.rhs)
	if err != nil {
		err = fmt.Errorf("%w: single-layer solve: %v", ErrNumericalFailure, err)
		return
	}

	// Stage 3: eliminate the grid unknown, solve for the potential jump.
	// resid carries -(vn - Gs(fstar)).
	gs := c.Ops.NormalDeriv(fstar)
	for k := 0; k < n; k++ {
		c.resid.DataP[k] = gs.DataP[k] - c.vn.DataP[k]
	}
	df, err = c.Schur.SolveSchur(c.resid)
	if err != nil {
		return
	}

	// Stage 4: double-layer correction, f = fstar + Linv(Ds(df))
	corr, err := c.Solver.Solve(c.Ops.DivSpread(df))
	if err != nil {
		err = fmt.Errorf("%w: double-layer solve: %v", ErrNumericalFailure, err)
		return
	}
	f = c.Ops.Grid.NewField()
	f.CopyFrom(fstar)
	f.AddScaled(1, corr)

	// Stage 5: streamfunction jump and field
	sstar := c.Ops.CurlSpread(df)
	ds, err = c.Schur.SolveSchur(c.Ops.CrossDeriv(fstar))
	if err != nil {
		return
	}
	dt := c.Ops.CrossDivSpread(ds)
	srhs := c.Ops.Grid.NewField()
	srhs.CopyFrom(sstar)
	srhs.AddScaled(-1, dt)
	s, err = c.Solver.Solve(srhs)
	if err != nil {
		err = fmt.Errorf("%w: streamfunction solve: %v", ErrNumericalFailure, err)
		return
	}

	if !f.IsFinite() || !s.IsFinite() ||
		!utils.AllFinite(df.DataP) || !utils.AllFinite(ds.DataP) {
		err = fmt.Errorf("%w: solution contains non-finite values", ErrNumericalFailure)
		return
	}
	return f, df, s, ds, nil
}

// SurfaceIntegralNormal integrates a surface scalar against the outward
// normals: (sum q n_x ds, sum q n_y ds). Integrating the potential jump
// this way yields the added-mass force coefficients.
func SurfaceIntegralNormal(q gutils.Vector, bl *body.BodyList) (fx, fy float64) {
	for k := 0; k < bl.NumPoints(); k++ {
		_, _, nx, ny, ds := bl.Point(k)
		fx += q.DataP[k] * nx * ds
		fy += q.DataP[k] * ny * ds
	}
	return
}
