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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/* Types */

// Nonzero is a single entry of a sparse matrix in triplet form.
type Nonzero struct {
	Row int     `json:"row"`
	Col int     `json:"col"`
	Val float64 `json:"val"`
}

// Matrix is a sparse matrix in triplet form with explicit dimensions,
// so all-zero trailing rows and columns are representable. Duplicate
// entries for the same (row, col) position are summed.
type Matrix struct {
	rows, cols int
	nz         []Nonzero
}

// NewMatrix returns an empty rows×cols sparse matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols}
}

// NewMatrixFromEntries returns a rows×cols sparse matrix holding a copy
// of the given entries.
func NewMatrixFromEntries(rows, cols int, entries []Nonzero) (*Matrix, error) {
	m := NewMatrix(rows, cols)
	for _, nz := range entries {
		if err := m.Set(nz.Row, nz.Col, nz.Val); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Set records an entry. Setting the same position twice accumulates.
// Zero values are dropped.
func (m *Matrix) Set(row, col int, val float64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("entry (%d,%d) outside %dx%d matrix", row, col, m.rows, m.cols)
	}
	if val == 0 {
		return nil
	}
	m.nz = append(m.nz, Nonzero{Row: row, Col: col, Val: val})
	return nil
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Nonzeros returns a copy of the matrix entries.
func (m *Matrix) Nonzeros() []Nonzero {
	out := make([]Nonzero, len(m.nz))
	copy(out, m.nz)
	return out
}

// Dense converts the matrix to a dense gonum matrix, summing duplicate
// entries.
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for _, nz := range m.nz {
		d.Set(nz.Row, nz.Col, d.At(nz.Row, nz.Col)+nz.Val)
	}
	return d
}

// MulVec computes the matrix-vector product Ax.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("vector length %d does not match %d columns", len(x), m.cols)
	}
	y := make([]float64, m.rows)
	for _, nz := range m.nz {
		y[nz.Row] += nz.Val * x[nz.Col]
	}
	return y, nil
}

// rowEntries buckets the matrix entries by row. Used during
// reformulation to copy selected rows into the extended matrix.
func (m *Matrix) rowEntries() [][]Nonzero {
	buckets := make([][]Nonzero, m.rows)
	for _, nz := range m.nz {
		buckets[nz.Row] = append(buckets[nz.Row], nz)
	}
	return buckets
}
