package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(Config{Nx: 0, Ny: 8, H: 0.1}); err == nil {
		t.Errorf("expected error for Nx=0")
	}
	if _, err := NewGrid(Config{Nx: 8, Ny: 8, H: 0}); err == nil {
		t.Errorf("expected error for H=0")
	}
	g, err := NewGrid(Config{Nx: 8, Ny: 4, H: 0.5, X0: -2, Y0: -1})
	if err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
	assert.Equal(t, 32, g.NumCells())
	assert.InDelta(t, -1.75, g.X(0), 1e-14)
	assert.InDelta(t, -0.75, g.Y(0), 1e-14)
}

func TestFieldOps(t *testing.T) {
	g, _ := NewGrid(Config{Nx: 4, Ny: 3, H: 1})
	f := g.NewField()
	f.Set(2, 1, 3)
	f.Set(0, 0, -5)
	assert.Equal(t, 3.0, f.At(2, 1))
	assert.Equal(t, 5.0, f.MaxAbs())

	f2 := g.NewField()
	f2.CopyFrom(f)
	f2.AddScaled(2, f)
	assert.Equal(t, 9.0, f2.At(2, 1))

	if !f.IsFinite() {
		t.Errorf("finite field reported non-finite")
	}
	f.Set(1, 1, math.NaN())
	if f.IsFinite() {
		t.Errorf("NaN not detected")
	}

	f.Zero()
	assert.Equal(t, 0.0, f.MaxAbs())
}

// eigenField fills a field with the (p,q) eigenvector of the Dirichlet
// Laplacian
func eigenField(g *Grid, p, q int) Field {
	f := g.NewField()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			f.Set(i, j,
				math.Sin(math.Pi*float64(p)*(float64(i)+0.5)/float64(g.Nx))*
					math.Sin(math.Pi*float64(q)*(float64(j)+0.5)/float64(g.Ny)))
		}
	}
	return f
}

func TestLaplacianEigenvector(t *testing.T) {
	g, _ := NewGrid(Config{Nx: 24, Ny: 18, H: 0.25, X0: -3, Y0: -2})
	p, q := 3, 5
	f := eigenField(g, p, q)
	lf := g.Laplacian(f)

	lamX := (2*math.Cos(math.Pi*float64(p)/float64(g.Nx)) - 2) / (g.H * g.H)
	lamY := (2*math.Cos(math.Pi*float64(q)/float64(g.Ny)) - 2) / (g.H * g.H)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			assert.InDelta(t, (lamX+lamY)*f.At(i, j), lf.At(i, j), 1e-11)
		}
	}
}

func TestCurlOfGradientVanishes(t *testing.T) {
	g, _ := NewGrid(Config{Nx: 20, Ny: 20, H: 0.1, X0: -1, Y0: -1})
	f := g.NewField()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			x, y := g.X(i), g.Y(j)
			f.Set(i, j, math.Exp(-2*(x*x+y*y)))
		}
	}
	c := g.ScalarCurl(g.Gradient(f))
	// Centered differences commute, so the interior curl is zero to
	// roundoff; wall cells see the Dirichlet ghosts and are excluded
	for j := 2; j < g.Ny-2; j++ {
		for i := 2; i < g.Nx-2; i++ {
			assert.InDelta(t, 0, c.At(i, j), 1e-12)
		}
	}
}

func TestDivergenceOfUniformFlow(t *testing.T) {
	g, _ := NewGrid(Config{Nx: 16, Ny: 16, H: 0.125, X0: -1, Y0: -1})
	v := g.NewVectorField()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			v.X.Set(i, j, 1)
			v.Y.Set(i, j, -2)
		}
	}
	d := g.Divergence(v)
	for j := 2; j < g.Ny-2; j++ {
		for i := 2; i < g.Nx-2; i++ {
			assert.InDelta(t, 0, d.At(i, j), 1e-13)
		}
	}
}
