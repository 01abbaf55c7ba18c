package immersion

import "math"

// Kernel is a one-dimensional discrete delta function. Weight takes the
// point-to-cell distance in units of the grid spacing and kernels vanish
// outside [-Support, Support]. The 2D delta is the tensor product of two
// 1D evaluations divided by the cell area.
type Kernel interface {
	Name() string
	Support() float64
	Weight(r float64) float64
}

// Roma is the 3-point smooth kernel of Roma, Peskin and Berger. It has
// continuous first derivatives and satisfies the discrete zeroth and
// first moment conditions on a uniform grid.
type Roma struct{}

func (Roma) Name() string     { return "Roma" }
func (Roma) Support() float64 { return 1.5 }

func (Roma) Weight(r float64) float64 {
	a := math.Abs(r)
	switch {
	case a <= 0.5:
		return (1 + math.Sqrt(1-3*a*a)) / 3
	case a <= 1.5:
		return (5 - 3*a - math.Sqrt(1-3*(1-a)*(1-a))) / 6
	}
	return 0
}

// Hat is the 2-point piecewise-linear kernel. Cheaper and more compact
// than Roma but only C0, so interpolated gradients are noisier.
type Hat struct{}

func (Hat) Name() string     { return "Hat" }
func (Hat) Support() float64 { return 1 }

func (Hat) Weight(r float64) float64 {
	a := math.Abs(r)
	if a < 1 {
		return 1 - a
	}
	return 0
}
