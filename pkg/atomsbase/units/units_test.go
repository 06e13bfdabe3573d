package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		want    Unit
		wantErr bool
	}{
		{name: "bohr", symbol: "bohr", want: Bohr},
		{name: "angstrom symbol", symbol: "Å", want: Angstrom},
		{name: "angstrom alias mixed case", symbol: "Angstrom", want: Angstrom},
		{name: "velocity", symbol: "bohr/s", want: BohrPerSecond},
		{name: "dalton alias", symbol: " Da ", want: Dalton},
		{name: "unknown", symbol: "furlong", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.symbol)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u)
		})
	}
}

func TestQuantityConvert(t *testing.T) {
	q, err := Q(1, Angstrom).Convert(Bohr)
	require.NoError(t, err)
	assert.InDelta(t, 1.8897261246, q.Value, 1e-9)
	assert.Equal(t, Bohr, q.Unit)

	_, err = Q(1, Angstrom).Convert(Dalton)
	require.ErrorIs(t, err, ErrIncompatible)
}

func TestQuantityEqual(t *testing.T) {
	assert.True(t, Q(2, Dalton).Equal(Q(2, Dalton)))
	assert.False(t, Q(2, Dalton).Equal(Q(2, Kilogram)))
	assert.False(t, Q(2, Dalton).Equal(Q(2, Bohr)), "different dimensions are never equal")
	assert.True(t, Inf(Bohr).Equal(Inf(Angstrom)))
	assert.False(t, NaN(Dalton).Equal(NaN(Dalton)))
	assert.True(t, NaN(Dalton).IsNaN())
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "1.5 bohr", Q(1.5, Bohr).String())
	assert.Equal(t, "+Inf bohr", Inf(Bohr).String())
	assert.Equal(t, "3", Q(3, One).String())
}

func TestVector(t *testing.T) {
	raw := []float64{0, 0, 1}
	v := NewVector(Bohr, raw...)
	raw[2] = 99

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, Length, v.Dim())
	assert.Equal(t, Q(1, Bohr), v.At(2), "vector must not alias its input")

	vals := v.Values()
	vals[0] = 42
	assert.Equal(t, 0.0, v.At(0).Value, "Values must return a copy")

	assert.True(t, v.Equal(NewVector(Bohr, 0, 0, 1)))
	assert.False(t, v.Equal(NewVector(Bohr, 0, 1)))
	assert.False(t, v.Equal(NewVector(Dalton, 0, 0, 1)))
	assert.Equal(t, "[0, 0, 1] bohr", v.String())
}

func TestVectorConvertAndScale(t *testing.T) {
	v := NewVector(Angstrom, 1, 2)
	c, err := v.Convert(Nanometer)
	require.NoError(t, err)
	assert.True(t, c.EqualApprox(NewVector(Nanometer, 0.1, 0.2), 1e-12))
	assert.True(t, v.EqualApprox(c, 1e-12))

	_, err = v.Convert(BohrPerSecond)
	require.ErrorIs(t, err, ErrIncompatible)

	s := v.Scale(0.5)
	assert.True(t, s.Equal(NewVector(Angstrom, 0.5, 1)))
	assert.True(t, v.Equal(NewVector(Angstrom, 1, 2)), "Scale must not mutate the receiver")
}

func TestZeros(t *testing.T) {
	z := Zeros(BohrPerSecond, 2)
	assert.Equal(t, 2, z.Len())
	assert.Equal(t, Velocity, z.Dim())
	for i := 0; i < z.Len(); i++ {
		assert.Equal(t, 0.0, z.At(i).Value)
	}

	inf := NewVector(Bohr, math.Inf(1), 0)
	assert.True(t, inf.Equal(NewVector(Angstrom, math.Inf(1), 0)))
}
