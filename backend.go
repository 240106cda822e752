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

/* Types */

// Sense is the optimization direction of a loaded problem.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// RelOp is the relational operator of a quadratic constraint. The
// bridge only ever emits LessEqual, but the backend contract keeps the
// operator explicit.
type RelOp int

const (
	LessEqual RelOp = iota
	GreaterEqual
	Equal
)

// VarType describes the domain of a single variable.
type VarType int

const (
	ContinuousVariable VarType = iota
	IntegerVariable
	BinaryVariable
)

// SolveStatus is the backend's verdict after Optimize. The bridge
// reports it verbatim and attaches no interpretation of its own.
type SolveStatus int

const (
	SolutionUndefined SolveStatus = iota
	SolutionOptimal
	SolutionSuboptimal
	SolutionInfeasible
	SolutionUnbounded
)

func (s SolveStatus) String() string {
	switch s {
	case SolutionUndefined:
		return "undefined"
	case SolutionOptimal:
		return "optimal"
	case SolutionSuboptimal:
		return "suboptimal"
	case SolutionInfeasible:
		return "infeasible"
	case SolutionUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// QuadraticConstraint is a single constraint of the form
//
//	linCoef·x[linIdx] + Σ quadCoef[i]·x[qi[i]]·x[qj[i]]  relop  rhs
//
// The linear part may be empty. The three quadratic slices are
// parallel.
type QuadraticConstraint struct {
	LinIdx   []int     `json:"lin_idx,omitempty"`
	LinCoef  []float64 `json:"lin_coef,omitempty"`
	QuadIdx1 []int     `json:"quad_idx1"`
	QuadIdx2 []int     `json:"quad_idx2"`
	QuadCoef []float64 `json:"quad_coef"`
	Rel      RelOp     `json:"rel"`
	RHS      float64   `json:"rhs"`
}

// Backend is the LP/QP solver the bridge loads reformulated problems
// into. Implementations wrap one opaque solver model instance; the
// bridge never assumes the backend is safe for concurrent use.
//
// LoadLinearProblem replaces the backend's whole model state: sparse
// constraint matrix, variable bounds l/u, objective c, row bounds
// lb/ub and optimization sense. AddQuadraticConstraint appends one
// quadratic constraint to the loaded model.
type Backend interface {
	LoadLinearProblem(a *Matrix, l, u, c, lb, ub []float64, sense Sense) error
	AddQuadraticConstraint(linIdx []int, linCoef []float64, quadIdx1, quadIdx2 []int, quadCoef []float64, rel RelOp, rhs float64) error
	Optimize() error
	Status() SolveStatus
	Solution() []float64
	ObjectiveValue() float64
	ReducedCosts() []float64
	VariableTypes() []VarType
	SetVariableTypes(types []VarType) error
}
