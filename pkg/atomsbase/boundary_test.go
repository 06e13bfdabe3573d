package atomsbase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

func cubicBox(a float64, u units.Unit) Box {
	return Box{
		units.NewVector(u, a, 0, 0),
		units.NewVector(u, 0, a, 0),
		units.NewVector(u, 0, 0, a),
	}
}

func TestInfiniteBox(t *testing.T) {
	for d := 1; d <= 3; d++ {
		box, err := InfiniteBox(d)
		require.NoError(t, err)
		require.Equal(t, d, box.Dims())
		for i, v := range box {
			assert.Equal(t, units.Bohr, v.Unit())
			for j := 0; j < d; j++ {
				if i == j {
					assert.True(t, math.IsInf(v.At(j).Value, 1))
				} else {
					assert.Equal(t, 0.0, v.At(j).Value)
				}
			}
		}
	}
}

func TestInfiniteBox_UnsupportedDimension(t *testing.T) {
	for _, d := range []int{-1, 0, 4} {
		_, err := InfiniteBox(d)
		require.ErrorIs(t, err, ErrUnsupportedDimension, "d=%d", d)
	}
}

func TestParseBoundaryCondition(t *testing.T) {
	tests := []struct {
		in      string
		want    BoundaryCondition
		wantErr bool
	}{
		{in: "periodic", want: Periodic},
		{in: " Periodic ", want: Periodic},
		{in: "dirichlet_zero", want: DirichletZero},
		{in: "vacuum", want: DirichletZero},
		{in: "reflective", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bc, err := ParseBoundaryCondition(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bc)
		})
	}
	assert.Equal(t, "Periodic", Periodic.String())
	assert.Equal(t, "DirichletZero", DirichletZero.String())
}

func TestBoxValidate(t *testing.T) {
	require.NoError(t, cubicBox(1, units.Bohr).Validate())

	ragged := Box{units.NewVector(units.Bohr, 1, 0), units.NewVector(units.Bohr, 0, 1, 0)}
	require.ErrorIs(t, ragged.Validate(), ErrDimensionMismatch)

	wrongUnit := Box{units.NewVector(units.Dalton, 1)}
	require.ErrorIs(t, wrongUnit.Validate(), units.ErrIncompatible)
}

func TestBoxCartesian(t *testing.T) {
	box := Box{
		units.NewVector(units.Angstrom, 0, 2.7, 2.7),
		units.NewVector(units.Angstrom, 2.7, 0, 2.7),
		units.NewVector(units.Angstrom, 2.7, 2.7, 0),
	}
	m, err := box.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 2.7, m.At(1, 0), "box vectors are the matrix columns")
	assert.Equal(t, 0.0, m.At(0, 0))

	cart, err := box.Cartesian([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.True(t, cart.Equal(box[0]))

	cart, err = box.Cartesian([]float64{0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.True(t, cart.EqualApprox(units.NewVector(units.Angstrom, 2.7, 2.7, 2.7), 1e-12))

	_, err = box.Cartesian([]float64{1, 0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBoxMixedUnits(t *testing.T) {
	box := Box{
		units.NewVector(units.Bohr, 1, 0),
		units.NewVector(units.Angstrom, 0, 1),
	}
	m, err := box.Matrix()
	require.NoError(t, err)
	assert.InDelta(t, 1.8897261246, m.At(1, 1), 1e-9, "columns are converted to the first vector's unit")
}
