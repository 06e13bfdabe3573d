package units

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a fixed-length vector whose components share one unit.
// The zero Vector has no components and no unit.
type Vector struct {
	unit   Unit
	values []float64
}

// NewVector copies values into a new vector tagged with u.
func NewVector(u Unit, values ...float64) Vector {
	out := make([]float64, len(values))
	copy(out, values)
	return Vector{unit: u, values: out}
}

// Zeros returns the n-dimensional zero vector in unit u.
func Zeros(u Unit, n int) Vector {
	return Vector{unit: u, values: make([]float64, n)}
}

func (v Vector) Len() int {
	return len(v.values)
}

func (v Vector) Unit() Unit {
	return v.unit
}

func (v Vector) Dim() Dimension {
	return v.unit.Dim
}

// At returns component i as a quantity. It panics if i is out of range.
func (v Vector) At(i int) Quantity {
	return Quantity{Value: v.values[i], Unit: v.unit}
}

// Values returns a copy of the raw components.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Convert returns v expressed in unit to.
func (v Vector) Convert(to Unit) (Vector, error) {
	f, err := v.unit.factor(to)
	if err != nil {
		return Vector{}, err
	}
	out := v.Values()
	if f != 1 {
		floats.Scale(f, out)
	}
	return Vector{unit: to, values: out}, nil
}

// Scale returns v multiplied by the dimensionless factor f.
func (v Vector) Scale(f float64) Vector {
	out := v.Values()
	floats.Scale(f, out)
	return Vector{unit: v.unit, values: out}
}

// Equal reports exact componentwise equality after converting o into v's unit.
func (v Vector) Equal(o Vector) bool {
	if len(v.values) != len(o.values) {
		return false
	}
	c, err := o.Convert(v.unit)
	if err != nil {
		return false
	}
	return floats.Equal(v.values, c.values)
}

// EqualApprox is Equal with an absolute or relative tolerance per component.
func (v Vector) EqualApprox(o Vector, tol float64) bool {
	if len(v.values) != len(o.values) {
		return false
	}
	c, err := o.Convert(v.unit)
	if err != nil {
		return false
	}
	return floats.EqualApprox(v.values, c.values, tol)
}

func (v Vector) String() string {
	parts := make([]string, len(v.values))
	for i, x := range v.values {
		parts[i] = fmt.Sprintf("%g", x)
	}
	s := "[" + strings.Join(parts, ", ") + "]"
	if v.unit.Symbol != "" {
		s += " " + v.unit.Symbol
	}
	return s
}
