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

import "fmt"

// UnsupportedConeError is returned by LoadConicProblem when the problem
// uses a cone kind the bridge cannot reformulate. No model state is
// loaded into the backend in that case.
type UnsupportedConeError struct {
	Kind ConeKind
}

func (e UnsupportedConeError) Error() string {
	return fmt.Sprintf("unsupported cone kind %q", e.Kind)
}

// DimensionMismatchError signals an internal inconsistency between the
// number of rows consumed by second-order constraint cones and the
// number of auxiliary variables allocated for them. It indicates a
// malformed cone description.
type DimensionMismatchError struct {
	Rows, Vars int
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("second-order cone rows (%d) do not match auxiliary variables (%d)", e.Rows, e.Vars)
}
