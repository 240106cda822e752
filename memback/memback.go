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

// Package memback provides an in-memory coniclp.Backend. It records
// the loaded model instead of solving it, which makes it useful for
// inspecting reformulations, for testing, and as a staging area before
// exporting a model to a real solver.
package memback

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/costela/coniclp"
)

/* Types */

// Backend is an in-memory LP/QP model. All fields hold deep copies of
// whatever was loaded, so callers may mutate their own buffers freely
// after a load.
type Backend struct {
	Sense    coniclp.Sense     `json:"sense"`
	Obj      []float64         `json:"obj"`
	ColLower []float64         `json:"col_lower"`
	ColUpper []float64         `json:"col_upper"`
	Rows     int               `json:"rows"`
	Cols     int               `json:"cols"`
	Entries  []coniclp.Nonzero `json:"entries"`
	RowLower []float64         `json:"row_lower"`
	RowUpper []float64         `json:"row_upper"`

	Quads    []coniclp.QuadraticConstraint `json:"quads,omitempty"`
	VarTypes []coniclp.VarType             `json:"var_types,omitempty"`

	// Result is replayed by Optimize and the query methods. Tests and
	// tools preset it; a real solver would fill it in.
	Result Result `json:"result"`

	// Loads counts LoadLinearProblem calls.
	Loads int `json:"-"`

	optimized bool
}

// Result is the canned solve outcome replayed by the backend.
type Result struct {
	Status       coniclp.SolveStatus `json:"status"`
	Solution     []float64           `json:"solution,omitempty"`
	Objective    float64             `json:"objective"`
	ReducedCosts []float64           `json:"reduced_costs,omitempty"`
}

var _ coniclp.Backend = (*Backend)(nil)

// New returns an empty backend.
func New() *Backend {
	return &Backend{}
}

func copyFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

func copyInts(src []int) []int {
	out := make([]int, len(src))
	copy(out, src)
	return out
}

/* Backend interface */

// LoadLinearProblem replaces the whole model state. Any previously
// registered quadratic constraints and variable types are discarded.
func (b *Backend) LoadLinearProblem(a *coniclp.Matrix, l, u, c, lb, ub []float64, sense coniclp.Sense) error {
	rows, cols := a.Dims()
	if len(l) != cols || len(u) != cols || len(c) != cols {
		return fmt.Errorf("column buffers do not match %d columns", cols)
	}
	if len(lb) != rows || len(ub) != rows {
		return fmt.Errorf("row buffers do not match %d rows", rows)
	}

	b.Sense = sense
	b.Obj = copyFloats(c)
	b.ColLower = copyFloats(l)
	b.ColUpper = copyFloats(u)
	b.Rows = rows
	b.Cols = cols
	b.Entries = a.Nonzeros()
	b.RowLower = copyFloats(lb)
	b.RowUpper = copyFloats(ub)

	b.Quads = nil
	b.VarTypes = make([]coniclp.VarType, cols)
	b.Loads++
	b.optimized = false

	return nil
}

// AddQuadraticConstraint appends one quadratic constraint to the
// loaded model.
func (b *Backend) AddQuadraticConstraint(linIdx []int, linCoef []float64, quadIdx1, quadIdx2 []int, quadCoef []float64, rel coniclp.RelOp, rhs float64) error {
	if b.Loads == 0 {
		return fmt.Errorf("no linear problem loaded")
	}
	if len(linIdx) != len(linCoef) {
		return fmt.Errorf("inconsistent linear part: %d indices, %d coefficients", len(linIdx), len(linCoef))
	}
	if len(quadIdx1) != len(quadIdx2) || len(quadIdx1) != len(quadCoef) {
		return fmt.Errorf("inconsistent quadratic part: %d/%d indices, %d coefficients", len(quadIdx1), len(quadIdx2), len(quadCoef))
	}

	b.Quads = append(b.Quads, coniclp.QuadraticConstraint{
		LinIdx:   copyInts(linIdx),
		LinCoef:  copyFloats(linCoef),
		QuadIdx1: copyInts(quadIdx1),
		QuadIdx2: copyInts(quadIdx2),
		QuadCoef: copyFloats(quadCoef),
		Rel:      rel,
		RHS:      rhs,
	})

	return nil
}

// Optimize marks the model optimized. The backend performs no actual
// solving; the preset Result is replayed by the query methods.
func (b *Backend) Optimize() error {
	if b.Loads == 0 {
		return fmt.Errorf("no linear problem loaded")
	}
	b.optimized = true
	return nil
}

func (b *Backend) Status() coniclp.SolveStatus {
	if !b.optimized {
		return coniclp.SolutionUndefined
	}
	return b.Result.Status
}

func (b *Backend) Solution() []float64 {
	return copyFloats(b.Result.Solution)
}

func (b *Backend) ObjectiveValue() float64 {
	return b.Result.Objective
}

func (b *Backend) ReducedCosts() []float64 {
	return copyFloats(b.Result.ReducedCosts)
}

func (b *Backend) VariableTypes() []coniclp.VarType {
	out := make([]coniclp.VarType, len(b.VarTypes))
	copy(out, b.VarTypes)
	return out
}

func (b *Backend) SetVariableTypes(types []coniclp.VarType) error {
	if len(types) != b.Cols {
		return fmt.Errorf("got %d variable types for %d columns", len(types), b.Cols)
	}
	b.VarTypes = make([]coniclp.VarType, len(types))
	copy(b.VarTypes, types)
	return nil
}

/* Inspection helpers */

// Matrix rebuilds the loaded constraint matrix.
func (b *Backend) Matrix() (*coniclp.Matrix, error) {
	return coniclp.NewMatrixFromEntries(b.Rows, b.Cols, b.Entries)
}

// Check verifies that the point x satisfies the loaded model up to the
// given tolerance: variable bounds, row activities and quadratic
// constraints. It returns a descriptive error for the first violation
// found, or nil if x is feasible.
func (b *Backend) Check(x []float64, tol float64) error {
	if len(x) != b.Cols {
		return fmt.Errorf("point length %d does not match %d columns", len(x), b.Cols)
	}

	for i, v := range x {
		if v < b.ColLower[i]-tol || v > b.ColUpper[i]+tol {
			return fmt.Errorf("variable %d = %g outside bounds [%g, %g]", i, v, b.ColLower[i], b.ColUpper[i])
		}
	}

	if b.Rows > 0 && b.Cols > 0 {
		a, err := b.Matrix()
		if err != nil {
			return err
		}
		var ax mat.VecDense
		ax.MulVec(a.Dense(), mat.NewVecDense(len(x), copyFloats(x)))
		for i := 0; i < b.Rows; i++ {
			v := ax.AtVec(i)
			if v < b.RowLower[i]-tol || v > b.RowUpper[i]+tol {
				return fmt.Errorf("row %d activity %g outside bounds [%g, %g]", i, v, b.RowLower[i], b.RowUpper[i])
			}
		}
	}

	for qi, q := range b.Quads {
		v := 0.0
		for i, idx := range q.LinIdx {
			v += q.LinCoef[i] * x[idx]
		}
		for i := range q.QuadIdx1 {
			v += q.QuadCoef[i] * x[q.QuadIdx1[i]] * x[q.QuadIdx2[i]]
		}
		var ok bool
		switch q.Rel {
		case coniclp.LessEqual:
			ok = v <= q.RHS+tol
		case coniclp.GreaterEqual:
			ok = v >= q.RHS-tol
		case coniclp.Equal:
			ok = math.Abs(v-q.RHS) <= tol
		}
		if !ok {
			return fmt.Errorf("quadratic constraint %d violated: value %g vs rhs %g", qi, v, q.RHS)
		}
	}

	return nil
}
