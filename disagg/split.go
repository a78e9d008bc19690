// SPDX-License-Identifier: MIT

package disagg

import (
	"fmt"

	"github.com/cornerstone-data/bedrock/table"
)

// SplitByAggRatio splits base into two complementary vectors using a
// coarse ratio broadcast down through the correspondence.
//
// Axes: corresp rows = fine taxonomy = base's index; corresp columns =
// coarse taxonomy = aggRatio's index. Every ratio must lie in [0, 1].
//
// Each fine sector inherits the ratio of its coarse parent (the one
// nonzero term of its correspondence row under a true partition):
// partA = base · ratio, partB = base · (1 − ratio). No renormalization —
// partA + partB equals base exactly, by construction.
func SplitByAggRatio(base, aggRatio *table.Vector, corresp *table.Correspondence) (*table.Vector, *table.Vector, error) {
	if base == nil || aggRatio == nil || corresp == nil {
		return nil, nil, fmt.Errorf("SplitByAggRatio: %w", table.ErrNilTable)
	}
	if err := table.ValidateIndexEqual(aggRatio.Index(), corresp.Cols(), "SplitByAggRatio: ratio"); err != nil {
		return nil, nil, err
	}
	if err := table.ValidateIndexEqual(base.Index(), corresp.Rows(), "SplitByAggRatio: base"); err != nil {
		return nil, nil, err
	}

	nFine := corresp.Rows().Len()
	nCoarse := corresp.Cols().Len()

	var j int
	var r float64
	for j = 0; j < nCoarse; j++ {
		r = aggRatio.AtPos(j)
		if r < 0 || r > 1 {
			return nil, nil, fmt.Errorf("SplitByAggRatio: %q ratio %g: %w",
				aggRatio.Index().Code(j), r, ErrRatioRange)
		}
	}

	partA := make([]float64, nFine)
	partB := make([]float64, nFine)
	var i int
	var broadcast float64
	for i = 0; i < nFine; i++ {
		broadcast = 0
		for j = 0; j < nCoarse; j++ {
			broadcast += corresp.AtPos(i, j) * aggRatio.AtPos(j)
		}
		partA[i] = base.AtPos(i) * broadcast
		partB[i] = base.AtPos(i) * (1 - broadcast)
	}

	a, err := table.NewVector(base.Index(), partA)
	if err != nil {
		return nil, nil, fmt.Errorf("SplitByAggRatio: %w", err)
	}
	b, err := table.NewVector(base.Index(), partB)
	if err != nil {
		return nil, nil, fmt.Errorf("SplitByAggRatio: %w", err)
	}

	return a, b, nil
}
