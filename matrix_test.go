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

func TestMatrixSet(t *testing.T) {
	m := NewMatrix(2, 3)

	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 2, -4))
	assert.Error(t, m.Set(2, 0, 1))
	assert.Error(t, m.Set(0, 3, 1))
	assert.Error(t, m.Set(-1, 0, 1))

	// zeroes are dropped
	require.NoError(t, m.Set(1, 1, 0))
	assert.Len(t, m.Nonzeros(), 2)
}

func TestMatrixDenseSumsDuplicates(t *testing.T) {
	m := NewMatrix(2, 2)
	require.NoError(t, m.Set(0, 1, 1.5))
	require.NoError(t, m.Set(0, 1, 2.5))
	require.NoError(t, m.Set(1, 0, -1))

	d := m.Dense()
	assert.Equal(t, 4.0, d.At(0, 1))
	assert.Equal(t, -1.0, d.At(1, 0))
	assert.Equal(t, 0.0, d.At(0, 0))
}

func TestMatrixMulVec(t *testing.T) {
	m := NewMatrix(2, 3)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 2, 2))
	require.NoError(t, m.Set(1, 1, -1))

	y, err := m.MulVec([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, -2}, y)

	_, err = m.MulVec([]float64{1, 2})
	assert.Error(t, err)
}

func TestMatrixNonzerosIsACopy(t *testing.T) {
	m := NewMatrix(1, 1)
	require.NoError(t, m.Set(0, 0, 1))

	nz := m.Nonzeros()
	nz[0].Val = 99

	assert.Equal(t, 1.0, m.Nonzeros()[0].Val)
}
