// SPDX-License-Identifier: MIT

package disagg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cornerstone-data/bedrock/table"
)

// Disaggregate splits the aggregate base vector down to the correspondence's
// fine (row) taxonomy, in proportion to weights.
//
// Axes: corresp rows = fine taxonomy = weights' index; corresp columns =
// aggregate taxonomy = base's index.
//
// Preconditions (hard errors): binary correspondence (guaranteed by the
// Correspondence type), strict partition — every fine sector belongs to at
// most one aggregate (ErrNotPartition) — and exact index alignment
// (table.ErrIndexMismatch).
//
// Algorithm: scale each correspondence row by its weight; substitute the
// alternate weights for aggregates whose weighted column sums to zero (see
// WithAltWeights); normalize each column to sum to 1, mapping 0/0 to 0;
// multiply by base.
//
// Postcondition (hard error): the output total equals the base total
// within DefaultConservationRTol relative (ErrConservation). The partition
// makes conservation exact barring a logic error, so unlike the reflection
// engine this check raises instead of logging.
func Disaggregate(corresp *table.Correspondence, base, weights *table.Vector, opts ...Option) (*table.Vector, error) {
	o := gatherOptions(opts...)

	if corresp == nil || base == nil || weights == nil {
		return nil, fmt.Errorf("Disaggregate: %w", table.ErrNilTable)
	}
	if err := table.ValidateIndexEqual(weights.Index(), corresp.Rows(), "Disaggregate: weights"); err != nil {
		return nil, err
	}
	if err := table.ValidateIndexEqual(base.Index(), corresp.Cols(), "Disaggregate: base"); err != nil {
		return nil, err
	}
	if o.alt != nil {
		if err := table.ValidateIndexEqual(o.alt.Index(), corresp.Rows(), "Disaggregate: alt weights"); err != nil {
			return nil, err
		}
	}

	nFine := corresp.Rows().Len()
	nAgg := corresp.Cols().Len()

	var i, j int
	for i = 0; i < nFine; i++ {
		if corresp.RowSum(i) > 1 {
			return nil, fmt.Errorf("Disaggregate: sector %q in multiple aggregates: %w",
				corresp.Rows().Code(i), ErrNotPartition)
		}
	}

	// Weight every correspondence row, then find zero-weight aggregates.
	weighted := mat.NewDense(nFine, nAgg, nil)
	for i = 0; i < nFine; i++ {
		for j = 0; j < nAgg; j++ {
			weighted.Set(i, j, corresp.AtPos(i, j)*weights.AtPos(i))
		}
	}

	colSums := make([]float64, nAgg)
	for j = 0; j < nAgg; j++ {
		for i = 0; i < nFine; i++ {
			colSums[j] += weighted.At(i, j)
		}
	}

	if o.alt != nil {
		for j = 0; j < nAgg; j++ {
			if colSums[j] != 0 {
				continue
			}
			for i = 0; i < nFine; i++ {
				weighted.Set(i, j, corresp.AtPos(i, j)*o.alt.AtPos(i))
				colSums[j] += weighted.At(i, j)
			}
		}
	}

	for j = 0; j < nAgg; j++ {
		if colSums[j] == 0 {
			o.logger.Warn("disaggregation: aggregate has zero weight, its value will be dropped",
				"aggregate", corresp.Cols().Code(j))
		}
	}

	// Column-normalize; a zero column stays zero instead of going NaN.
	for j = 0; j < nAgg; j++ {
		if colSums[j] == 0 {
			continue
		}
		var check float64
		for i = 0; i < nFine; i++ {
			weighted.Set(i, j, weighted.At(i, j)/colSums[j])
			check += weighted.At(i, j)
		}
		if math.Abs(check-1) > columnNormTol {
			return nil, fmt.Errorf("Disaggregate: aggregate %q sums to %g: %w",
				corresp.Cols().Code(j), check, ErrColumnNorm)
		}
	}

	out := mat.NewVecDense(nFine, nil)
	out.MulVec(weighted, base.Raw())

	result, err := table.NewVector(corresp.Rows(), rawVec(out))
	if err != nil {
		return nil, fmt.Errorf("Disaggregate: %w", err)
	}

	if !relClose(result.Sum(), base.Sum(), DefaultConservationRTol) {
		return nil, fmt.Errorf("Disaggregate: %g != %g: %w", result.Sum(), base.Sum(), ErrConservation)
	}

	return result, nil
}

// relClose mirrors math.isclose: |a-b| <= rtol * max(|a|, |b|).
func relClose(a, b, rtol float64) bool {
	return math.Abs(a-b) <= rtol*math.Max(math.Abs(a), math.Abs(b))
}

// rawVec copies a VecDense into a fresh slice.
func rawVec(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}
