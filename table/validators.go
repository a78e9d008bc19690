// SPDX-License-Identifier: MIT
// Package: table
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating alignment/finite/binary checks here.
//  - Wrap sentinels with a short context tag so call sites read uniformly.

package table

import (
	"fmt"
	"math"

	"github.com/cornerstone-data/bedrock/taxonomy"
)

// ValidateIndexEqual asserts order-sensitive equality of two taxonomies.
// what names the operand being checked ("base rows", "weights", ...) so the
// wrapped ErrIndexMismatch pinpoints the misaligned input.
func ValidateIndexEqual(got, want *taxonomy.Taxonomy, what string) error {
	if got == nil || want == nil {
		return fmt.Errorf("%s: %w", what, ErrNilTaxonomy)
	}
	if !got.Equal(want) {
		return fmt.Errorf("%s: %w", what, ErrIndexMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in vals.
func ValidateFinite(vals []float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value at %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// validateBinary rejects any cell that is not exactly 0 or exactly 1.
// Binary-ness is what makes a correspondence a correspondence; it is
// enforced once at construction so kernels can assume it.
func validateBinary(vals []float64) error {
	for i, v := range vals {
		if v != 0 && v != 1 {
			return fmt.Errorf("cell at %d is %g: %w", i, v, ErrNonBinary)
		}
	}

	return nil
}
