package grid

// Discrete differential operators on cell-centered fields. All operators
// close the stencil at the domain walls with a homogeneous Dirichlet ghost
// value, mirroring the cell across the wall: f(ghost) = -f(interior). The
// same closure is used by the elliptic solvers so that Solve is the exact
// inverse of Laplacian.

// ghostAt evaluates f at (i,j) extending one cell past the walls with the
// Dirichlet closure
func ghostAt(f Field, i, j int) float64 {
	g := f.Grid
	switch {
	case i < 0:
		return -f.At(0, j)
	case i >= g.Nx:
		return -f.At(g.Nx-1, j)
	case j < 0:
		return -f.At(i, 0)
	case j >= g.Ny:
		return -f.At(i, g.Ny-1)
	}
	return f.At(i, j)
}

// Laplacian applies the 5-point discrete Laplacian to f
func (g *Grid) Laplacian(f Field) Field {
	out := g.NewField()
	h2 := g.H * g.H
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			v := ghostAt(f, i-1, j) + ghostAt(f, i+1, j) +
				ghostAt(f, i, j-1) + ghostAt(f, i, j+1) - 4*f.At(i, j)
			out.Set(i, j, v/h2)
		}
	}
	return out
}

// Gradient computes the centered-difference gradient of f
func (g *Grid) Gradient(f Field) VectorField {
	out := g.NewVectorField()
	twoH := 2 * g.H
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			out.X.Set(i, j, (ghostAt(f, i+1, j)-ghostAt(f, i-1, j))/twoH)
			out.Y.Set(i, j, (ghostAt(f, i, j+1)-ghostAt(f, i, j-1))/twoH)
		}
	}
	return out
}

// Divergence computes the centered-difference divergence of v
func (g *Grid) Divergence(v VectorField) Field {
	out := g.NewField()
	twoH := 2 * g.H
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			d := (ghostAt(v.X, i+1, j)-ghostAt(v.X, i-1, j))/twoH +
				(ghostAt(v.Y, i, j+1)-ghostAt(v.Y, i, j-1))/twoH
			out.Set(i, j, d)
		}
	}
	return out
}

// ScalarCurl computes the out-of-plane component of the curl of v,
// dvy/dx - dvx/dy
func (g *Grid) ScalarCurl(v VectorField) Field {
	out := g.NewField()
	twoH := 2 * g.H
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			c := (ghostAt(v.Y, i+1, j)-ghostAt(v.Y, i-1, j))/twoH -
				(ghostAt(v.X, i, j+1)-ghostAt(v.X, i, j-1))/twoH
			out.Set(i, j, c)
		}
	}
	return out
}
