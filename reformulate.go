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
	"math"
)

/* Types */

// lpqp is the fully reformulated problem, ready to be handed to a
// backend. It only ever refers to freshly allocated buffers; the
// caller-supplied problem arrays are never aliased.
type lpqp struct {
	obj      []float64
	colLower []float64
	colUpper []float64
	matrix   *Matrix
	rowLower []float64
	rowUpper []float64
	quads    []QuadraticConstraint

	numVars       int // original variable count, before padding
	numLinearRows int // m minus the rows consumed by second-order cones
}

// linearRow is one constraint row that survives as a plain linear row,
// tagged with the cone kind that decides its bounds.
type linearRow struct {
	idx  int
	kind ConeKind
}

// validateCones rejects the first cone kind outside the supported set.
func validateCones(cones []Cone) error {
	for _, c := range cones {
		if !c.Kind.supported() {
			return UnsupportedConeError{Kind: c.Kind}
		}
	}
	return nil
}

// partitionRows splits the constraint rows into plain linear rows and
// second-order groups, both preserving the supplied order.
func partitionRows(cones []Cone) (linear []linearRow, socGroups [][]int) {
	for _, c := range cones {
		if c.Kind == SecondOrderCone {
			socGroups = append(socGroups, c.Indices)
			continue
		}
		for _, idx := range c.Indices {
			linear = append(linear, linearRow{idx: idx, kind: c.Kind})
		}
	}
	return linear, socGroups
}

// socConstraint builds the quadratic cone-membership constraint
// -x₀² + x₁² + … + x_k² ≤ 0 over the given ordered indices. The first
// index is the leading component.
func socConstraint(idxs []int) QuadraticConstraint {
	qi := make([]int, len(idxs))
	qj := make([]int, len(idxs))
	coef := make([]float64, len(idxs))
	for i, idx := range idxs {
		qi[i] = idx
		qj[i] = idx
		coef[i] = 1
	}
	coef[0] = -1
	return QuadraticConstraint{
		QuadIdx1: qi,
		QuadIdx2: qj,
		QuadCoef: coef,
		Rel:      LessEqual,
		RHS:      0,
	}
}

// reformulate translates a conic problem into an equivalent LP/QP. Each
// constraint row claimed by a second-order cone is replaced by an
// equality y = b - Ax on a fresh auxiliary variable, and the cone
// membership of the auxiliary block (or of the original variables, for
// variable cones) is expressed as a single quadratic constraint.
func reformulate(c []float64, a *Matrix, b []float64, constraintCones, variableCones []Cone) (*lpqp, error) {
	m, n := a.Dims()
	if len(c) != n {
		return nil, fmt.Errorf("objective length %d does not match %d columns", len(c), n)
	}
	if len(b) != m {
		return nil, fmt.Errorf("right-hand side length %d does not match %d rows", len(b), m)
	}
	if err := validateCones(constraintCones); err != nil {
		return nil, err
	}
	if err := validateCones(variableCones); err != nil {
		return nil, err
	}

	linear, socGroups := partitionRows(constraintCones)

	socRows := 0
	for _, g := range socGroups {
		socRows += len(g)
	}
	// every row not kept as linear must have been claimed by exactly
	// one second-order group
	aux := m - len(linear)
	if aux != socRows {
		return nil, DimensionMismatchError{Rows: socRows, Vars: aux}
	}

	ncols := n + aux
	nrows := len(linear) + aux

	obj := make([]float64, ncols)
	copy(obj, c)

	colLower := make([]float64, ncols)
	colUpper := make([]float64, ncols)
	for i := range colLower {
		colLower[i] = math.Inf(-1)
		colUpper[i] = math.Inf(1)
	}

	for _, vc := range variableCones {
		switch vc.Kind {
		case Free:
			// unbounded default
		case Zero:
			for _, i := range vc.Indices {
				colLower[i] = 0
				colUpper[i] = 0
			}
		case NonNegative:
			for _, i := range vc.Indices {
				colLower[i] = 0
			}
		case NonPositive:
			for _, i := range vc.Indices {
				colUpper[i] = 0
			}
		case SecondOrderCone:
			// only the leading component of the group is bounded; the
			// cone shape itself is enforced by a quadratic constraint
			if len(vc.Indices) > 0 {
				colLower[vc.Indices[0]] = 0
			}
		}
	}

	// the leading auxiliary variable of each second-order group must be
	// nonnegative for the quadratic form to imply cone membership
	pos := n
	for _, g := range socGroups {
		if len(g) > 0 {
			colLower[pos] = 0
		}
		pos += len(g)
	}

	out := NewMatrix(nrows, ncols)
	rowLower := make([]float64, nrows)
	rowUpper := make([]float64, nrows)
	rows := a.rowEntries()

	for r, lr := range linear {
		for _, nz := range rows[lr.idx] {
			out.nz = append(out.nz, Nonzero{Row: r, Col: nz.Col, Val: nz.Val})
		}
		switch lr.kind {
		case Zero:
			rowLower[r], rowUpper[r] = b[lr.idx], b[lr.idx]
		case NonPositive:
			// b - Ax ≤ 0  ⟺  Ax ≥ b
			rowLower[r], rowUpper[r] = b[lr.idx], math.Inf(1)
		case NonNegative:
			// b - Ax ≥ 0  ⟺  Ax ≤ b
			rowLower[r], rowUpper[r] = math.Inf(-1), b[lr.idx]
		case Free:
			rowLower[r], rowUpper[r] = math.Inf(-1), math.Inf(1)
		}
	}

	// equality block Ax + y = b defining the auxiliary variables
	r, col := len(linear), n
	for _, g := range socGroups {
		for _, idx := range g {
			for _, nz := range rows[idx] {
				out.nz = append(out.nz, Nonzero{Row: r, Col: nz.Col, Val: nz.Val})
			}
			out.nz = append(out.nz, Nonzero{Row: r, Col: col, Val: 1})
			rowLower[r], rowUpper[r] = b[idx], b[idx]
			r++
			col++
		}
	}

	var quads []QuadraticConstraint
	for _, vc := range variableCones {
		if vc.Kind == SecondOrderCone && len(vc.Indices) > 0 {
			quads = append(quads, socConstraint(vc.Indices))
		}
	}
	col = n
	for _, g := range socGroups {
		if len(g) == 0 {
			continue
		}
		idxs := make([]int, len(g))
		for i := range g {
			idxs[i] = col
			col++
		}
		quads = append(quads, socConstraint(idxs))
	}

	return &lpqp{
		obj:           obj,
		colLower:      colLower,
		colUpper:      colUpper,
		matrix:        out,
		rowLower:      rowLower,
		rowUpper:      rowUpper,
		quads:         quads,
		numVars:       n,
		numLinearRows: m - socRows,
	}, nil
}
