// SPDX-License-Identifier: MIT

package eeio

import (
	"fmt"

	"github.com/cornerstone-data/bedrock/table"
)

// ClipNegativesMatrix returns a copy of m with every negative cell set to
// zero, along with the number of cells clipped. Published use and
// requirements tables occasionally carry small negative entries
// (inventory adjustments, secondary-product accounting) that the model
// treats as zero.
func ClipNegativesMatrix(m *table.Matrix) (*table.Matrix, int, error) {
	if m == nil {
		return nil, 0, fmt.Errorf("ClipNegativesMatrix: %w", table.ErrNilTable)
	}

	out := m.Clone()
	raw := out.Raw()
	r, c := raw.Dims()

	var i, j, clipped int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if raw.At(i, j) < 0 {
				raw.Set(i, j, 0)
				clipped++
			}
		}
	}

	return out, clipped, nil
}

// ClipNegativesVector is ClipNegativesMatrix for vectors.
func ClipNegativesVector(v *table.Vector) (*table.Vector, int, error) {
	if v == nil {
		return nil, 0, fmt.Errorf("ClipNegativesVector: %w", table.ErrNilTable)
	}

	out := v.Clone()
	raw := out.Raw()

	var i, clipped int
	for i = 0; i < raw.Len(); i++ {
		if raw.AtVec(i) < 0 {
			raw.SetVec(i, 0)
			clipped++
		}
	}

	return out, clipped, nil
}
