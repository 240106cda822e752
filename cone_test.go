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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConeKind(t *testing.T) {
	kind, err := ParseConeKind("soc")
	require.NoError(t, err)
	assert.Equal(t, SecondOrderCone, kind)

	_, err = ParseConeKind("icecream")
	assert.Error(t, err)
}

func TestConeJSON(t *testing.T) {
	cone := Cone{Kind: SecondOrderCone, Indices: []int{2, 0, 1}}

	data, err := json.Marshal(cone)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"soc","indices":[2,0,1]}`, string(data))

	var parsed Cone
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, cone, parsed)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"icecream"}`), &parsed))
}
