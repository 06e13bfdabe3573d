package atomsbase

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// BoundaryCondition is the condition applied at the edges of one axis.
type BoundaryCondition uint8

const (
	// DirichletZero is a non-periodic, vacuum-like edge.
	DirichletZero BoundaryCondition = iota
	// Periodic wraps the axis around.
	Periodic
)

func (bc BoundaryCondition) String() string {
	switch bc {
	case DirichletZero:
		return "DirichletZero"
	case Periodic:
		return "Periodic"
	default:
		return fmt.Sprintf("BoundaryCondition(%d)", uint8(bc))
	}
}

// ParseBoundaryCondition accepts "periodic" and "dirichlet"/"dirichlet_zero"/"vacuum", ignoring case.
func ParseBoundaryCondition(s string) (BoundaryCondition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "periodic":
		return Periodic, nil
	case "dirichlet", "dirichletzero", "dirichlet_zero", "vacuum":
		return DirichletZero, nil
	}
	return 0, fmt.Errorf("unknown boundary condition %q", s)
}

// Fill returns n copies of bc.
func Fill(bc BoundaryCondition, n int) []BoundaryCondition {
	out := make([]BoundaryCondition, n)
	for i := range out {
		out[i] = bc
	}
	return out
}

// Box is the bounding box of a system: D vectors of D lengths each.
type Box []units.Vector

// Dims returns the number of box vectors.
func (b Box) Dims() int {
	return len(b)
}

// Validate checks that every vector is length-dimensioned and has Dims() components.
func (b Box) Validate() error {
	for i, v := range b {
		if v.Len() != len(b) {
			return fmt.Errorf("%w: box vector %d has %d components, box has %d vectors", ErrDimensionMismatch, i, v.Len(), len(b))
		}
		if v.Dim() != units.Length {
			return fmt.Errorf("box vector %d: %w: expected length, got %s", i, units.ErrIncompatible, v.Dim())
		}
	}
	return nil
}

// Equal reports exact equality of every box vector.
func (b Box) Equal(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the box slice.
func (b Box) Clone() Box {
	out := make(Box, len(b))
	copy(out, b)
	return out
}

// Unit returns the unit of the first box vector, in which Matrix is expressed.
func (b Box) Unit() units.Unit {
	if len(b) == 0 {
		return units.Unit{}
	}
	return b[0].Unit()
}

// Matrix returns the lattice matrix with the box vectors as columns, all in Unit().
func (b Box) Matrix() (*mat.Dense, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	d := len(b)
	if d == 0 {
		return nil, fmt.Errorf("%w: empty box", ErrUnsupportedDimension)
	}
	m := mat.NewDense(d, d, nil)
	for j, v := range b {
		c, err := v.Convert(b.Unit())
		if err != nil {
			return nil, err
		}
		m.SetCol(j, c.Values())
	}
	return m, nil
}

// Cartesian maps fractional coordinates to a Cartesian position:
// Matrix() * frac.
func (b Box) Cartesian(frac []float64) (units.Vector, error) {
	if len(frac) != len(b) {
		return units.Vector{}, fmt.Errorf("%w: %d fractional coordinates for a %d-dimensional box", ErrDimensionMismatch, len(frac), len(b))
	}
	m, err := b.Matrix()
	if err != nil {
		return units.Vector{}, err
	}
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(frac), append([]float64(nil), frac...)))
	return units.NewVector(b.Unit(), out.RawVector().Data...), nil
}

// InfiniteBox returns the d-dimensional infinite box in the default length unit.
func InfiniteBox(d int) (Box, error) {
	return infiniteBox(d, DefaultUnits().Length)
}

func infiniteBox(d int, u units.Unit) (Box, error) {
	if d < 1 || d > 3 {
		return nil, fmt.Errorf("%w: infinite box requires 1, 2 or 3 dimensions, got %d", ErrUnsupportedDimension, d)
	}
	box := make(Box, d)
	for i := range box {
		vals := make([]float64, d)
		vals[i] = math.Inf(1)
		box[i] = units.NewVector(u, vals...)
	}
	return box, nil
}
