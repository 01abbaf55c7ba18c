package potential

import (
	"fmt"

	"github.com/nlowes/layerpot/grid"
	"github.com/nlowes/layerpot/immersion"
	"github.com/notargets/gocfd/utils"
	"gonum.org/v1/gonum/mat"
)

// condLimit is the condition estimate beyond which the Schur operator is
// treated as singular at build time
const condLimit = 1e12

// SchurOperator is the surface-to-surface coupling obtained by
// eliminating the grid unknown from the saddle-point system:
//
//	S = Rn^T Rn - Gs * Linv * Ds
//
// It is built densely, one canonical basis column at a time, because the
// surface space is small compared to the grid, and factored once so every
// solve is a back substitution.
type SchurOperator struct {
	n  int
	S  utils.Matrix
	lu mat.LU
}

// BuildSchur constructs and factors the Schur complement for a fixed
// geometry. Returns ErrConfiguration when the geometry is empty or the
// resulting operator is numerically singular.
func BuildSchur(ops *immersion.Operators, solver grid.EllipticSolver) (*SchurOperator, error) {
	n := ops.NumPoints()
	if n == 0 {
		return nil, fmt.Errorf("%w: no surface points", ErrConfiguration)
	}

	so := &SchurOperator{n: n, S: utils.NewMatrix(n, n)}
	e := ops.NewSurfaceField()
	for j := 0; j < n; j++ {
		e.DataP[j] = 1
		rn := ops.RnApply(e)
		linv, err := solver.Solve(ops.DivSpread(e))
		if err != nil {
			return nil, fmt.Errorf("%w: eliminating basis column %d: %v", ErrNumericalFailure, j, err)
		}
		gs := ops.NormalDeriv(linv)
		for i := 0; i < n; i++ {
			so.S.Set(i, j, rn.DataP[i]-gs.DataP[i])
		}
		e.DataP[j] = 0
	}

	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense.Set(i, j, so.S.At(i, j))
		}
	}
	so.lu.Factorize(dense)
	if cond := so.lu.Cond(); cond > condLimit {
		return nil, fmt.Errorf("%w: Schur operator is singular (condition estimate %.3e)",
			ErrConfiguration, cond)
	}
	return so, nil
}

// NumPoints returns the dimension of the surface space
func (so *SchurOperator) NumPoints() int { return so.n }

// Apply computes the forward map S*q
func (so *SchurOperator) Apply(q utils.Vector) utils.Vector {
	out := so.S.Mul(q.ToMatrix())
	return utils.NewVector(so.n, out.DataP)
}

// SolveSchur solves S*x = b for x
func (so *SchurOperator) SolveSchur(b utils.Vector) (utils.Vector, error) {
	if len(b.DataP) != so.n {
		return utils.Vector{}, fmt.Errorf("%w: rhs has %d points, operator has %d",
			ErrDimensionMismatch, len(b.DataP), so.n)
	}
	var x mat.VecDense
	if err := so.lu.SolveVecTo(&x, false, mat.NewVecDense(so.n, b.DataP)); err != nil {
		return utils.Vector{}, fmt.Errorf("%w: Schur solve: %v", ErrNumericalFailure, err)
	}
	return utils.NewVector(so.n, x.RawVector().Data), nil
}
