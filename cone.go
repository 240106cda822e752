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
	"encoding/json"
	"fmt"
)

/* Types */

// ConeKind identifies the convex cone a group of variables or constraint
// rows belongs to. Only the first five kinds are handled by the bridge;
// the remaining kinds exist so callers can describe problems we must
// reject explicitly instead of silently approximating.
type ConeKind int

const (
	Free ConeKind = iota
	Zero
	NonNegative
	NonPositive
	SecondOrderCone
	RotatedSecondOrderCone
	PositiveSemidefinite
	ExponentialPrimal
	ExponentialDual
)

var coneKindNames = map[ConeKind]string{
	Free:                   "free",
	Zero:                   "zero",
	NonNegative:            "nonneg",
	NonPositive:            "nonpos",
	SecondOrderCone:        "soc",
	RotatedSecondOrderCone: "rsoc",
	PositiveSemidefinite:   "sdp",
	ExponentialPrimal:      "expprimal",
	ExponentialDual:        "expdual",
}

// Cone pairs a cone kind with the ordered variable or row indices it
// applies to. Indices are zero-based. The order of the indices is
// meaningful for second-order cones: the first index is the leading
// ("norm bound") component, regardless of numeric order.
type Cone struct {
	Kind    ConeKind `json:"kind"`
	Indices []int    `json:"indices"`
}

func (k ConeKind) String() string {
	if name, ok := coneKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ConeKind(%d)", int(k))
}

// ParseConeKind is the inverse of String.
func ParseConeKind(s string) (ConeKind, error) {
	for kind, name := range coneKindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown cone kind %q", s)
}

func (k ConeKind) MarshalJSON() ([]byte, error) {
	name, ok := coneKindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal cone kind %d", int(k))
	}
	return json.Marshal(name)
}

func (k *ConeKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, err := ParseConeKind(name)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// supported reports whether the bridge can reformulate the cone kind.
func (k ConeKind) supported() bool {
	switch k {
	case Free, Zero, NonNegative, NonPositive, SecondOrderCone:
		return true
	}
	return false
}
