// Package potential solves the Laplace/Poisson saddle-point problem for
// a potential field with double-valued Neumann data on immersed surfaces.
// The grid unknown is eliminated through a Schur complement over the
// surface points, yielding the potential, its surface jump, and the
// harmonic-conjugate streamfunction with its jump.
package potential

import (
	"fmt"

	"github.com/nlowes/layerpot/grid"
	"github.com/nlowes/layerpot/immersion"
	"github.com/notargets/gocfd/utils"
)

// Cache owns the built Schur operator and the scratch buffers reused
// across repeated solves on one fixed geometry. Scratch is zeroed at the
// start of every Solve; no state carries between solves beyond the
// operator itself. A Cache must not be shared by concurrent Solve calls:
// duplicate it or serialize access.
type Cache struct {
	Ops    *immersion.Operators
	Solver grid.EllipticSolver
	Schur  *SchurOperator

	// Scratch, owned by Solve
	vn, dvn, resid utils.Vector
	rhs            grid.Field
}

// NewCache builds the Schur operator and scratch storage for a fixed
// grid/surface pairing. The construction cost (one elliptic solve per
// surface point plus an LU factorization) is paid once here.
func NewCache(ops *immersion.Operators, solver grid.EllipticSolver) (*Cache, error) {
	if ops.Grid != solver.Grid() {
		return nil, fmt.Errorf("%w: operators and elliptic solver were built for different grids",
			ErrConfiguration)
	}
	schur, err := BuildSchur(ops, solver)
	if err != nil {
		return nil, err
	}
	return &Cache{
		Ops:    ops,
		Solver: solver,
		Schur:  schur,
		vn:     ops.NewSurfaceField(),
		dvn:    ops.NewSurfaceField(),
		resid:  ops.NewSurfaceField(),
		rhs:    ops.Grid.NewField(),
	}, nil
}

// NumPoints returns the surface dimension the cache was built for
func (c *Cache) NumPoints() int { return c.Schur.NumPoints() }

// reset zeroes all scratch buffers
func (c *Cache) reset() {
	for k := range c.vn.DataP {
		c.vn.DataP[k] = 0
		c.dvn.DataP[k] = 0
		c.resid.DataP[k] = 0
	}
	c.rhs.Zero()
}
