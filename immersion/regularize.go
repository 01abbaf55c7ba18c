package immersion

import (
	"fmt"

	"github.com/nlowes/layerpot/body"
	"github.com/nlowes/layerpot/grid"
	"github.com/notargets/gocfd/utils"
)

// stencil caches the grid cells and tensor-product weights a surface
// point couples to
type stencil struct {
	cells   []int // flat cell index i + j*Nx
	weights []float64
	ds      float64
	nx, ny  float64
}

// Regularizer links a fixed set of surfaces to a fixed grid: Spread maps
// a surface scalar onto the grid through the discrete delta function and
// Interp is its sampling adjoint. The per-point stencils are precomputed
// at construction, so both directions are a single weighted gather or
// scatter per call.
type Regularizer struct {
	Grid   *grid.Grid
	Bodies *body.BodyList
	kernel Kernel

	stencils []stencil
}

// NewRegularizer precomputes the delta-function stencils for every
// canonical surface point. It fails if any point's support reaches
// outside the grid interior.
func NewRegularizer(g *grid.Grid, bl *body.BodyList, kernel Kernel) (*Regularizer, error) {
	r := &Regularizer{
		Grid:     g,
		Bodies:   bl,
		kernel:   kernel,
		stencils: make([]stencil, bl.NumPoints()),
	}
	reach := int(kernel.Support()) + 1
	for k := 0; k < bl.NumPoints(); k++ {
		x, y, nx, ny, ds := bl.Point(k)
		// Nearest cell center below the point in each direction
		i0 := int((x-g.X0)/g.H - 0.5)
		j0 := int((y-g.Y0)/g.H - 0.5)
		if i0-reach < 0 || i0+reach+1 >= g.Nx || j0-reach < 0 || j0+reach+1 >= g.Ny {
			return nil, fmt.Errorf("surface point %d at (%g, %g) is too close to the grid boundary for the %s kernel",
				k, x, y, kernel.Name())
		}
		st := stencil{ds: ds, nx: nx, ny: ny}
		for j := j0 - reach; j <= j0+reach+1; j++ {
			wy := kernel.Weight((y - g.Y(j)) / g.H)
			if wy == 0 {
				continue
			}
			for i := i0 - reach; i <= i0+reach+1; i++ {
				w := wy * kernel.Weight((x-g.X(i))/g.H)
				if w == 0 {
					continue
				}
				st.cells = append(st.cells, i+j*g.Nx)
				st.weights = append(st.weights, w)
			}
		}
		if len(st.cells) == 0 {
			return nil, fmt.Errorf("surface point %d has an empty delta stencil", k)
		}
		r.stencils[k] = st
	}
	return r, nil
}

// NumPoints returns the canonical surface point count
func (r *Regularizer) NumPoints() int { return r.Bodies.NumPoints() }

// NewSurfaceField allocates a zero surface field in canonical ordering
func (r *Regularizer) NewSurfaceField() utils.Vector {
	return utils.NewVector(r.NumPoints())
}

// Spread maps a surface scalar onto the grid:
// F(x) = sum_k q_k delta_h(x - X_k) ds_k
func (r *Regularizer) Spread(q utils.Vector) grid.Field {
	out := r.Grid.NewField()
	r.SpreadTo(out, q)
	return out
}

// SpreadTo accumulates the spread of q into an existing field without
// zeroing it first
func (r *Regularizer) SpreadTo(dst grid.Field, q utils.Vector) {
	data := dst.M.RawMatrix().Data
	h2 := r.Grid.H * r.Grid.H
	for k, st := range r.stencils {
		a := q.DataP[k] * st.ds / h2
		if a == 0 {
			continue
		}
		for c, cell := range st.cells {
			data[cell] += a * st.weights[c]
		}
	}
}

// Interp samples a grid field at the surface points:
// u_k = sum_cells F(x) delta_h(x - X_k) h^2
func (r *Regularizer) Interp(f grid.Field) utils.Vector {
	out := r.NewSurfaceField()
	data := f.M.RawMatrix().Data
	for k, st := range r.stencils {
		var u float64
		for c, cell := range st.cells {
			u += data[cell] * st.weights[c]
		}
		out.DataP[k] = u
	}
	return out
}

// SpreadNormal spreads the surface vector q*n componentwise
func (r *Regularizer) SpreadNormal(q utils.Vector) grid.VectorField {
	return r.spreadDirected(q, false)
}

// SpreadTangent spreads the surface vector q*t, where t is the normal
// rotated a quarter turn counterclockwise: t = (-ny, nx)
func (r *Regularizer) SpreadTangent(q utils.Vector) grid.VectorField {
	return r.spreadDirected(q, true)
}

func (r *Regularizer) spreadDirected(q utils.Vector, tangent bool) grid.VectorField {
	out := r.Grid.NewVectorField()
	dx := out.X.M.RawMatrix().Data
	dy := out.Y.M.RawMatrix().Data
	h2 := r.Grid.H * r.Grid.H
	for k, st := range r.stencils {
		ex, ey := st.nx, st.ny
		if tangent {
			ex, ey = -st.ny, st.nx
		}
		a := q.DataP[k] * st.ds / h2
		if a == 0 {
			continue
		}
		ax, ay := a*ex, a*ey
		for c, cell := range st.cells {
			dx[cell] += ax * st.weights[c]
			dy[cell] += ay * st.weights[c]
		}
	}
	return out
}
