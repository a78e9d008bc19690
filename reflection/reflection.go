// SPDX-License-Identifier: MIT

package reflection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

// valueColumn labels the synthetic single-column axis ReflectVector uses to
// route a vector through the 2-D engine.
const valueColumn = "__value__"

// ReflectMatrix reshapes base from its source taxonomies onto the target
// taxonomies of the two correspondences, imposing the structure of weights.
//
// Alignment contract (order-sensitive, hard errors):
//   - base rows    == rowCorresp source (columns)
//   - base cols    == colCorresp source (columns)
//   - weights rows == rowCorresp target (rows)
//   - weights cols == colCorresp target (rows)
//   - fallback, if configured, shares weights' taxonomies
//
// See the package documentation for the per-cell algorithm and the soft
// conservation check.
func ReflectMatrix(rowCorresp, colCorresp *table.Correspondence, base, weights *table.Matrix, opts ...Option) (*table.Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateReflect(rowCorresp, colCorresp, base, weights, o.fallback); err != nil {
		return nil, err
	}

	return reflect(rowCorresp, colCorresp, base, weights, o)
}

// ReflectSymmetric is ReflectMatrix for square sector×sector tables (a use
// table under one taxonomy reallocated to another): the same correspondence
// governs both axes.
func ReflectSymmetric(corresp *table.Correspondence, base, weights *table.Matrix, opts ...Option) (*table.Matrix, error) {
	return ReflectMatrix(corresp, corresp, base, weights, opts...)
}

// ReflectVector reduces the 2-D engine to 1-D: base and weights are treated
// as single-column matrices under a trivial unit column correspondence, and
// the single-column result is squeezed back to a vector over the target
// taxonomy. Fallback weights are not supported here (ErrVectorFallback).
func ReflectVector(corresp *table.Correspondence, base, weights *table.Vector, opts ...Option) (*table.Vector, error) {
	o := gatherOptions(opts...)
	if o.fallback != nil {
		return nil, fmt.Errorf("ReflectVector: %w", ErrVectorFallback)
	}
	if base == nil || weights == nil || corresp == nil {
		return nil, fmt.Errorf("ReflectVector: %w", table.ErrNilTable)
	}

	synth, err := taxonomy.New([]string{valueColumn})
	if err != nil {
		return nil, fmt.Errorf("ReflectVector: %w", err)
	}

	baseM, err := table.NewMatrix(base.Index(), synth, base.Values())
	if err != nil {
		return nil, fmt.Errorf("ReflectVector: base: %w", err)
	}
	weightsM, err := table.NewMatrix(weights.Index(), synth, weights.Values())
	if err != nil {
		return nil, fmt.Errorf("ReflectVector: weights: %w", err)
	}

	unit, err := table.NewMatrix(synth, synth, []float64{1})
	if err != nil {
		return nil, fmt.Errorf("ReflectVector: %w", err)
	}
	colCorresp, err := table.CorrespondenceFromMatrix(unit)
	if err != nil {
		return nil, fmt.Errorf("ReflectVector: %w", err)
	}

	if err = validateReflect(corresp, colCorresp, baseM, weightsM, nil); err != nil {
		return nil, err
	}

	out, err := reflect(corresp, colCorresp, baseM, weightsM, o)
	if err != nil {
		return nil, err
	}

	return out.Col(valueColumn)
}

// validateReflect runs the alignment contract. Binary-ness of the
// correspondences is guaranteed by the Correspondence type itself.
func validateReflect(rowCorresp, colCorresp *table.Correspondence, base, weights, fallback *table.Matrix) error {
	if rowCorresp == nil || colCorresp == nil || base == nil || weights == nil {
		return fmt.Errorf("reflection: %w", table.ErrNilTable)
	}
	if err := table.ValidateIndexEqual(base.Rows(), rowCorresp.Cols(), "reflection: base rows"); err != nil {
		return err
	}
	if err := table.ValidateIndexEqual(base.Cols(), colCorresp.Cols(), "reflection: base cols"); err != nil {
		return err
	}
	if err := table.ValidateIndexEqual(weights.Rows(), rowCorresp.Rows(), "reflection: weights rows"); err != nil {
		return err
	}
	if err := table.ValidateIndexEqual(weights.Cols(), colCorresp.Rows(), "reflection: weights cols"); err != nil {
		return err
	}
	if fallback != nil {
		if err := table.ValidateIndexEqual(fallback.Rows(), weights.Rows(), "reflection: fallback rows"); err != nil {
			return err
		}
		if err := table.ValidateIndexEqual(fallback.Cols(), weights.Cols(), "reflection: fallback cols"); err != nil {
			return err
		}
	}

	return nil
}

// support precomputes, per source position, the list of target positions
// its correspondence column marks. Iterating the support instead of the
// full target axis keeps the per-cell outer product proportional to actual
// fan-out while preserving the exact fallback-then-drop order of
// operations per cell.
func support(c *table.Correspondence) [][]int {
	raw := c.Raw()
	nTarget, nSource := raw.Dims()
	out := make([][]int, nSource)
	var i, j int
	for j = 0; j < nSource; j++ {
		for i = 0; i < nTarget; i++ {
			if raw.At(i, j) == 1 {
				out[j] = append(out[j], i)
			}
		}
	}

	return out
}

func reflect(rowCorresp, colCorresp *table.Correspondence, base, weights *table.Matrix, o options) (*table.Matrix, error) {
	rowTarget := rowCorresp.Rows()
	colTarget := colCorresp.Rows()

	out := mat.NewDense(rowTarget.Len(), colTarget.Len(), nil)
	w := weights.Raw()
	var fb *mat.Dense
	if o.fallback != nil {
		fb = o.fallback.Raw()
	}

	rowSupport := support(rowCorresp)
	colSupport := support(colCorresp)

	nRows := base.Rows().Len()
	nCols := base.Cols().Len()

	var i, j int
	var r, c int
	var v, total, altTotal, share float64
	for i = 0; i < nRows; i++ {
		for j = 0; j < nCols; j++ {
			v = base.AtPos(i, j)
			if v == 0 {
				continue
			}

			// Eligible weight total under the correspondence outer product.
			total = 0
			for _, r = range rowSupport[i] {
				for _, c = range colSupport[j] {
					total += w.At(r, c)
				}
			}

			if total != 0 {
				share = v
				if o.normalize {
					share = v / total
				}
				for _, r = range rowSupport[i] {
					for _, c = range colSupport[j] {
						out.Set(r, c, out.At(r, c)+share*w.At(r, c))
					}
				}

				continue
			}

			if fb == nil {
				if _, expected := o.expectedRowDropped[base.Rows().Code(i)]; expected {
					continue
				}
				if _, expected := o.expectedColDropped[base.Cols().Code(j)]; expected {
					continue
				}
				o.logger.Warn("reflection: skipping cell with no weighted correspondence",
					"value", v, "row", base.Rows().Code(i), "col", base.Cols().Code(j))

				continue
			}

			altTotal = 0
			for _, r = range rowSupport[i] {
				for _, c = range colSupport[j] {
					altTotal += fb.At(r, c)
				}
			}
			if altTotal != 0 {
				for _, r = range rowSupport[i] {
					for _, c = range colSupport[j] {
						out.Set(r, c, out.At(r, c)+v*fb.At(r, c)/altTotal)
					}
				}
			} else {
				o.logger.Warn("reflection: neither default nor fallback weight works, expect value losses",
					"value", v, "row", base.Rows().Code(i), "col", base.Cols().Code(j))
			}
		}
	}

	if o.normalize {
		checkConservation(rowCorresp, colCorresp, base, out, o)
	}

	reflected, err := table.NewMatrix(rowTarget, colTarget, denseData(out))
	if err != nil {
		return nil, fmt.Errorf("reflection: %w", err)
	}

	return reflected, nil
}

// checkConservation compares the reflected total with the base total
// restricted to source rows/columns that have at least one correspondence
// target. Sources with an empty correspondence column are legitimately
// excluded; a cell dropped for lack of weight (even after fallback) still
// counts toward the expected total and surfaces here as a warning. Soft
// check: log, never raise — upstream report data is known to be imperfect
// and a reviewer inspects warnings out of band.
//
// ri/ci below index source rows/columns of base.
func checkConservation(rowCorresp, colCorresp *table.Correspondence, base *table.Matrix, out *mat.Dense, o options) {
	keepRow := make([]bool, base.Rows().Len())
	for ri := range keepRow {
		keepRow[ri] = rowCorresp.ColSum(ri) >= 1
	}
	keepCol := make([]bool, base.Cols().Len())
	for ci := range keepCol {
		keepCol[ci] = colCorresp.ColSum(ci) >= 1
	}

	var baseSum float64
	var ri, ci int
	for ri = 0; ri < base.Rows().Len(); ri++ {
		if !keepRow[ri] {
			continue
		}
		for ci = 0; ci < base.Cols().Len(); ci++ {
			if keepCol[ci] {
				baseSum += base.AtPos(ri, ci)
			}
		}
	}

	srSum := mat.Sum(out)
	if math.Abs(srSum-baseSum) > conservationATol+DefaultConservationRTol*math.Abs(baseSum) {
		ratio := math.Inf(1)
		if baseSum != 0 {
			ratio = srSum / baseSum
		}
		o.logger.Warn("reflection: conservation check missed tolerance",
			"base_sum", baseSum, "reflected_sum", srSum, "ratio", ratio)
	}
}

// denseData flattens a Dense into a fresh row-major slice.
func denseData(d *mat.Dense) []float64 {
	r, c := d.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, d.RawRowView(i)...)
	}

	return out
}
