package body

import (
	"fmt"
	"math"
)

// Body is an immersed surface discretized by points in canonical order.
// Normals are outward unit vectors and DS carries the arclength weight
// attached to each point. A Body is treated as immutable once captured
// by a solver cache; build a new one for a changed geometry.
type Body struct {
	X, Y   []float64 // point coordinates
	Nx, Ny []float64 // outward unit normals
	DS     []float64 // arclength weights
}

// NumPoints returns the number of surface points
func (b *Body) NumPoints() int { return len(b.X) }

// Validate checks the body for consistent, non-degenerate data
func (b *Body) Validate() error {
	n := len(b.X)
	if n == 0 {
		return fmt.Errorf("body has no surface points")
	}
	if len(b.Y) != n || len(b.Nx) != n || len(b.Ny) != n || len(b.DS) != n {
		return fmt.Errorf("inconsistent body arrays: X=%d Y=%d Nx=%d Ny=%d DS=%d",
			len(b.X), len(b.Y), len(b.Nx), len(b.Ny), len(b.DS))
	}
	for k := 0; k < n; k++ {
		if b.DS[k] <= 0 {
			return fmt.Errorf("non-positive arclength weight %g at point %d", b.DS[k], k)
		}
		nrm := math.Hypot(b.Nx[k], b.Ny[k])
		if math.Abs(nrm-1) > 1e-8 {
			return fmt.Errorf("normal at point %d has length %g, want 1", k, nrm)
		}
	}
	return nil
}

// BodyList concatenates one or more disjoint surfaces into the canonical
// point enumeration used by the coupling operators: body 0 first, in its
// own order, then body 1, and so on.
type BodyList struct {
	Bodies  []*Body
	offsets []int
	total   int
}

// NewBodyList validates the bodies and fixes the canonical ordering
func NewBodyList(bodies ...*Body) (*BodyList, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("body list is empty")
	}
	bl := &BodyList{Bodies: bodies, offsets: make([]int, len(bodies))}
	for i, b := range bodies {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("body %d: %v", i, err)
		}
		bl.offsets[i] = bl.total
		bl.total += b.NumPoints()
	}
	return bl, nil
}

// NumPoints returns the total point count over all bodies
func (bl *BodyList) NumPoints() int { return bl.total }

// Range returns the canonical index range [lo, hi) of body i
func (bl *BodyList) Range(i int) (lo, hi int) {
	lo = bl.offsets[i]
	hi = lo + bl.Bodies[i].NumPoints()
	return
}

// Point returns the coordinates, normal and arclength weight of canonical
// point k
func (bl *BodyList) Point(k int) (x, y, nx, ny, ds float64) {
	for i, b := range bl.Bodies {
		if k < bl.offsets[i]+b.NumPoints() {
			j := k - bl.offsets[i]
			return b.X[j], b.Y[j], b.Nx[j], b.Ny[j], b.DS[j]
		}
	}
	panic(fmt.Sprintf("point index %d out of range (%d points)", k, bl.total))
}
