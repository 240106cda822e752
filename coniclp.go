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

/*

ConicLP bridges conic optimization problems onto plain LP/QP solver
backends. A conic problem minimizes c·x subject to b - Ax lying in a
product of cones, with the variables themselves grouped into cones as
well. The bridge rewrites every second-order cone as an equality block
plus one quadratic constraint, so any backend that understands linear
rows and quadratic constraints can solve the problem.

As an example, minimizing x₂ subject to (x₁, x₂) staying inside the
second-order cone x₁ ≥ |x₂| with x₁ fixed by a linear row:

	package main

	import (
		"fmt"

		"github.com/costela/coniclp"
		"github.com/costela/coniclp/memback"
	)

	func main() {
		a := coniclp.NewMatrix(1, 2)
		a.Set(0, 0, 1) // x₁ = 1

		model, _ := coniclp.NewModel(memback.New())
		err := model.LoadConicProblem(
			[]float64{0, 1}, a, []float64{1},
			[]coniclp.Cone{{Kind: coniclp.Zero, Indices: []int{0}}},
			[]coniclp.Cone{{Kind: coniclp.SecondOrderCone, Indices: []int{0, 1}}},
		)
		if err != nil {
			panic(err)
		}

		// ⋮
		// solve and query through the backend
		// ⋮

		if err := model.Optimize(); err != nil {
			panic(err)
		}
		fmt.Printf("status: %s\n", model.Status())
		fmt.Printf("x = %v\n", model.Solution()[:model.NumVariables()])
	}

*/
package coniclp

import "fmt"

/* Types */

// Model is a conic optimization model backed by an LP/QP solver. It
// owns only the translation logic; all problem state lives in the
// backend. A Model is not safe for concurrent use, matching the usual
// solver-backend contract.
type Model struct {
	backend Backend
	logger  Logger

	numVars       int
	numLinearRows int
	loaded        bool
}

/* Model related functions */

// NewModel instantiates a conic model on top of the given backend.
func NewModel(backend Backend, opts ...Option) (*Model, error) {
	if backend == nil {
		return nil, fmt.Errorf("nil backend")
	}

	model := &Model{
		backend: backend,
		logger:  noopLogger{},
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	return model, nil
}

// LoadConicProblem replaces the backend's model state with the LP/QP
// reformulation of the conic problem
//
//	minimize c·x  subject to  b - Ax ∈ constraintCones, x ∈ variableCones
//
// The caller keeps ownership of all supplied slices; they are read but
// never retained or modified. On error no backend state has been
// touched, except when the backend itself rejects the load, in which
// case its state must be considered undefined and discarded.
func (model *Model) LoadConicProblem(c []float64, a *Matrix, b []float64, constraintCones, variableCones []Cone) error {
	p, err := reformulate(c, a, b, constraintCones, variableCones)
	if err != nil {
		return err
	}

	if err := model.backend.LoadLinearProblem(p.matrix, p.colLower, p.colUpper, p.obj, p.rowLower, p.rowUpper, Minimize); err != nil {
		return fmt.Errorf("loading linear problem: %w", err)
	}
	for _, q := range p.quads {
		if err := model.backend.AddQuadraticConstraint(q.LinIdx, q.LinCoef, q.QuadIdx1, q.QuadIdx2, q.QuadCoef, q.Rel, q.RHS); err != nil {
			return fmt.Errorf("adding quadratic constraint: %w", err)
		}
	}

	model.numVars = p.numVars
	model.numLinearRows = p.numLinearRows
	model.loaded = true

	rows, cols := p.matrix.Dims()
	model.logger.Print(fmt.Sprintf("loaded conic problem: %d rows, %d cols, %d quadratic constraints", rows, cols, len(p.quads)))

	return nil
}

// NumVariables returns the number of variables of the loaded conic
// problem, before auxiliary padding.
func (model *Model) NumVariables() int {
	return model.numVars
}

// NumConstraints returns the number of constraint rows of the loaded
// conic problem that remain linear, i.e. the original row count minus
// the rows consumed by second-order cones.
func (model *Model) NumConstraints() int {
	return model.numLinearRows
}

/* Pass-through delegation */

// Optimize runs the backend's solve on the loaded model.
func (model *Model) Optimize() error {
	if !model.loaded {
		return fmt.Errorf("no problem loaded")
	}
	return model.backend.Optimize()
}

// Status reports the backend's solve status verbatim.
func (model *Model) Status() SolveStatus {
	return model.backend.Status()
}

// Solution returns the backend's primal solution. The vector covers
// the padded variable space; truncate to NumVariables() for the
// original variables only.
func (model *Model) Solution() []float64 {
	return model.backend.Solution()
}

// ObjectiveValue returns the backend's objective value.
func (model *Model) ObjectiveValue() float64 {
	return model.backend.ObjectiveValue()
}

// ReducedCosts returns the backend's reduced costs, in the padded
// variable space.
func (model *Model) ReducedCosts() []float64 {
	return model.backend.ReducedCosts()
}

// VariableTypes returns the backend's variable types, in the padded
// variable space.
func (model *Model) VariableTypes() []VarType {
	return model.backend.VariableTypes()
}

// SetVariableTypes forwards the given variable types to the backend
// unchanged.
func (model *Model) SetVariableTypes(types []VarType) error {
	return model.backend.SetVariableTypes(types)
}
