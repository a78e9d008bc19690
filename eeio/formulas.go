// SPDX-License-Identifier: MIT

package eeio

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cornerstone-data/bedrock/table"
)

// IndustryOutput computes g, the per-industry output: row sums of the make
// table V.
func IndustryOutput(v *table.Matrix) (*table.Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("IndustryOutput: %w", table.ErrNilTable)
	}

	return v.RowSums(), nil
}

// CommodityOutput computes q, the per-commodity output: column sums of the
// make table V.
func CommodityOutput(v *table.Matrix) (*table.Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("CommodityOutput: %w", table.ErrNilTable)
	}

	return v.ColSums(), nil
}

// NormalizeUse divides each column of the use table U (commodity ×
// industry) by the corresponding industry output g, yielding commodity
// requirements per unit of industry output. Industries with zero output
// get a zero column rather than NaN.
func NormalizeUse(u *table.Matrix, g *table.Vector) (*table.Matrix, error) {
	if u == nil || g == nil {
		return nil, fmt.Errorf("NormalizeUse: %w", table.ErrNilTable)
	}
	out, err := u.DivideColumns(g)
	if err != nil {
		return nil, fmt.Errorf("NormalizeUse: %w", err)
	}

	return out, nil
}

// NormalizeMake divides each column of the make table V (industry ×
// commodity) by the corresponding commodity output q, yielding each
// industry's market share of each commodity. Commodities nobody produces
// get a zero column rather than NaN.
func NormalizeMake(v *table.Matrix, q *table.Vector) (*table.Matrix, error) {
	if v == nil || q == nil {
		return nil, fmt.Errorf("NormalizeMake: %w", table.ErrNilTable)
	}
	out, err := v.DivideColumns(q)
	if err != nil {
		return nil, fmt.Errorf("NormalizeMake: %w", err)
	}

	return out, nil
}

// DirectRequirements computes A = UNorm · VNorm, the commodity × commodity
// direct-requirements table: units of each commodity required per unit of
// each commodity produced.
func DirectRequirements(uNorm, vNorm *table.Matrix) (*table.Matrix, error) {
	if uNorm == nil || vNorm == nil {
		return nil, fmt.Errorf("DirectRequirements: %w", table.ErrNilTable)
	}
	out, err := uNorm.Mul(vNorm)
	if err != nil {
		return nil, fmt.Errorf("DirectRequirements: %w", err)
	}

	return out, nil
}

// TotalRequirements computes the Leontief inverse L = (I−A)⁻¹, capturing
// direct plus all upstream requirements. A must be square in the label
// sense: identical row and column taxonomies.
//
// An ill-conditioned but invertible (I−A) succeeds with a warning; an
// exactly singular one returns ErrSingular.
func TotalRequirements(a *table.Matrix, opts ...Option) (*table.Matrix, error) {
	o := gatherOptions(opts...)

	if a == nil {
		return nil, fmt.Errorf("TotalRequirements: %w", table.ErrNilTable)
	}
	if !a.Rows().Equal(a.Cols()) {
		return nil, fmt.Errorf("TotalRequirements: %d×%d: %w",
			a.Rows().Len(), a.Cols().Len(), ErrNonSquare)
	}

	n := a.Rows().Len()
	if n > largeInversionSize {
		o.logger.Info("eeio: inverting large requirements table, this may take a while", "size", n)
	}

	iMinusA := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				iMinusA.Set(i, j, 1-a.AtPos(i, j))
			} else {
				iMinusA.Set(i, j, -a.AtPos(i, j))
			}
		}
	}

	// gonum reports exact singularity as an infinite condition number.
	var inv mat.Dense
	if err := inv.Inverse(iMinusA); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("TotalRequirements: %w", ErrSingular)
		}
		o.logger.Warn("eeio: (I-A) is ill-conditioned, total requirements may be inaccurate",
			"condition", float64(cond))
	}

	out, err := table.NewMatrix(a.Rows(), a.Cols(), denseData(&inv))
	if err != nil {
		return nil, fmt.Errorf("TotalRequirements: %w", err)
	}

	return out, nil
}

// denseData copies a Dense into a fresh row-major slice.
func denseData(d *mat.Dense) []float64 {
	r, c := d.Dims()
	out := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out = append(out, d.At(i, j))
		}
	}

	return out
}
