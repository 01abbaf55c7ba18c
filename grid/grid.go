package grid

import (
	"fmt"
	"strings"

	"github.com/nlowes/layerpot/utils"
	"gonum.org/v1/gonum/mat"
)

// Grid is a uniform cell-centered Cartesian grid on the rectangle
// [X0, X0+Nx*H] x [Y0, Y0+Ny*H]. Cell (i,j) is centered at
// (X0+(i+1/2)H, Y0+(j+1/2)H). The far-field closure for all discrete
// operators is homogeneous Dirichlet at the domain walls.
type Grid struct {
	Nx, Ny int
	H      float64
	X0, Y0 float64
}

// Config carries the grid construction parameters
type Config struct {
	Nx, Ny int
	H      float64
	X0, Y0 float64
}

// NewGrid creates a grid and validates its dimensions
func NewGrid(cfg Config) (*Grid, error) {
	if cfg.Nx <= 0 || cfg.Ny <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: Nx=%d, Ny=%d", cfg.Nx, cfg.Ny)
	}
	if cfg.H <= 0 {
		return nil, fmt.Errorf("invalid grid spacing: H=%g", cfg.H)
	}
	return &Grid{
		Nx: cfg.Nx,
		Ny: cfg.Ny,
		H:  cfg.H,
		X0: cfg.X0,
		Y0: cfg.Y0,
	}, nil
}

// X returns the x coordinate of the center of column i
func (g *Grid) X(i int) float64 { return g.X0 + (float64(i)+0.5)*g.H }

// Y returns the y coordinate of the center of row j
func (g *Grid) Y(j int) float64 { return g.Y0 + (float64(j)+0.5)*g.H }

// NumCells returns the total cell count
func (g *Grid) NumCells() int { return g.Nx * g.Ny }

// String returns a summary of the grid properties
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("=== Grid Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Cells: %d x %d (%d total)\n", g.Nx, g.Ny, g.NumCells()))
	sb.WriteString(fmt.Sprintf("  Spacing: %g\n", g.H))
	sb.WriteString(fmt.Sprintf("  Extent: [%g, %g] x [%g, %g]\n",
		g.X0, g.X0+float64(g.Nx)*g.H, g.Y0, g.Y0+float64(g.Ny)*g.H))
	return sb.String()
}

// Field is one scalar per grid cell, stored as an Ny x Nx dense matrix
// with row index j (y direction) and column index i (x direction).
type Field struct {
	Grid *Grid
	M    *mat.Dense
}

// NewField allocates a zero field on the grid
func (g *Grid) NewField() Field {
	return Field{Grid: g, M: mat.NewDense(g.Ny, g.Nx, nil)}
}

// At returns the value at cell (i,j)
func (f Field) At(i, j int) float64 { return f.M.At(j, i) }

// Set assigns the value at cell (i,j)
func (f Field) Set(i, j int, v float64) { f.M.Set(j, i, v) }

// Zero resets every cell to zero
func (f Field) Zero() {
	f.M.Zero()
}

// CopyFrom overwrites f with the contents of src
func (f Field) CopyFrom(src Field) {
	f.M.Copy(src.M)
}

// AddScaled accumulates f += alpha*src in place
func (f Field) AddScaled(alpha float64, src Field) {
	d := f.M.RawMatrix().Data
	s := src.M.RawMatrix().Data
	for k := range d {
		d[k] += alpha * s[k]
	}
}

// MaxAbs returns the maximum absolute cell value
func (f Field) MaxAbs() float64 {
	mn, mx := utils.MatrixMinMax(f.M)
	if -mn > mx {
		return -mn
	}
	return mx
}

// IsFinite reports whether every cell value is finite
func (f Field) IsFinite() bool {
	return utils.AllFinite(f.M.RawMatrix().Data)
}

// VectorField is a pair of co-located component fields
type VectorField struct {
	X, Y Field
}

// NewVectorField allocates a zero vector field on the grid
func (g *Grid) NewVectorField() VectorField {
	return VectorField{X: g.NewField(), Y: g.NewField()}
}

// Zero resets both components
func (v VectorField) Zero() {
	v.X.Zero()
	v.Y.Zero()
}
