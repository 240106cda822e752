/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/
package coniclp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionRowsPreservesOrder(t *testing.T) {
	linear, socGroups := partitionRows([]Cone{
		{Kind: NonNegative, Indices: []int{3, 1}},
		{Kind: SecondOrderCone, Indices: []int{0, 4}},
		{Kind: Zero, Indices: []int{2}},
		{Kind: SecondOrderCone, Indices: []int{5}},
	})

	require.Len(t, linear, 3)
	assert.Equal(t, linearRow{idx: 3, kind: NonNegative}, linear[0])
	assert.Equal(t, linearRow{idx: 1, kind: NonNegative}, linear[1])
	assert.Equal(t, linearRow{idx: 2, kind: Zero}, linear[2])

	assert.Equal(t, [][]int{{0, 4}, {5}}, socGroups)
}

func TestSocConstraintShape(t *testing.T) {
	q := socConstraint([]int{7, 2, 9})

	assert.Equal(t, []int{7, 2, 9}, q.QuadIdx1)
	assert.Equal(t, []int{7, 2, 9}, q.QuadIdx2)
	assert.Equal(t, []float64{-1, 1, 1}, q.QuadCoef)
	assert.Equal(t, LessEqual, q.Rel)
	assert.Equal(t, 0.0, q.RHS)
	assert.Empty(t, q.LinIdx)
	assert.Empty(t, q.LinCoef)
}

func TestReformulateDimensionChecks(t *testing.T) {
	a := NewMatrix(2, 2)

	_, err := reformulate([]float64{1}, a, []float64{0, 0}, nil, nil)
	assert.Error(t, err)

	_, err = reformulate([]float64{1, 1}, a, []float64{0}, nil, nil)
	assert.Error(t, err)
}

func TestReformulateDoesNotAliasInputs(t *testing.T) {
	c := []float64{1, 2}
	b := []float64{3, 4}
	a := NewMatrix(2, 2)
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(1, 1, 1))

	cones := []Cone{{Kind: Zero, Indices: []int{0, 1}}}
	varCones := []Cone{{Kind: Free, Indices: []int{0, 1}}}

	p, err := reformulate(c, a, b, cones, varCones)
	require.NoError(t, err)

	c[0] = -99
	b[0] = -99

	assert.Equal(t, []float64{1, 2}, p.obj)
	assert.Equal(t, []float64{3, 4}, p.rowLower)
	assert.Equal(t, []float64{3, 4}, p.rowUpper)
}

func TestReformulateAuxiliaryBlock(t *testing.T) {
	// two linear rows, then a second-order group over rows 1 and 3
	a := NewMatrix(4, 2)
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(1, 0, 2))
	require.NoError(t, a.Set(1, 1, 3))
	require.NoError(t, a.Set(2, 1, 4))
	require.NoError(t, a.Set(3, 0, 5))

	p, err := reformulate(
		[]float64{1, 1}, a, []float64{10, 20, 30, 40},
		[]Cone{
			{Kind: NonNegative, Indices: []int{0}},
			{Kind: SecondOrderCone, Indices: []int{1, 3}},
			{Kind: Zero, Indices: []int{2}},
		},
		[]Cone{{Kind: Free, Indices: []int{0, 1}}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, p.numVars)
	assert.Equal(t, 2, p.numLinearRows)

	rows, cols := p.matrix.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 4, cols)

	// padded objective
	assert.Equal(t, []float64{1, 1, 0, 0}, p.obj)

	// leading auxiliary is nonnegative, the trailing one unbounded
	assert.Equal(t, 0.0, p.colLower[2])
	assert.True(t, p.colLower[3] < 0 && p.colUpper[3] > 0)

	// rows 2 and 3 carry the original coefficients plus the identity
	// column, fixed to the corresponding rhs entries
	assert.ElementsMatch(t, []Nonzero{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 4},
		{Row: 2, Col: 0, Val: 2},
		{Row: 2, Col: 1, Val: 3},
		{Row: 2, Col: 2, Val: 1},
		{Row: 3, Col: 0, Val: 5},
		{Row: 3, Col: 3, Val: 1},
	}, p.matrix.Nonzeros())

	assert.Equal(t, 20.0, p.rowLower[2])
	assert.Equal(t, 20.0, p.rowUpper[2])
	assert.Equal(t, 40.0, p.rowLower[3])
	assert.Equal(t, 40.0, p.rowUpper[3])

	require.Len(t, p.quads, 1)
	assert.Equal(t, []int{2, 3}, p.quads[0].QuadIdx1)
}
