// SPDX-License-Identifier: MIT
// Package disagg: sentinel error set. Alignment violations reuse the table
// package's sentinels.

package disagg

import "errors"

var (
	// ErrNotPartition: a fine sector belongs to more than one aggregate.
	// Disaggregation requires a strict partition; a sector in two groups
	// would receive shares of two totals and double-count.
	ErrNotPartition = errors.New("disagg: correspondence must map each sector to at most one aggregate")

	// ErrColumnNorm: a normalized correspondence column does not sum to 1.
	// Internal sanity check; tripping it means a logic defect, not bad data.
	ErrColumnNorm = errors.New("disagg: normalized correspondence columns do not sum to 1")

	// ErrConservation: the disaggregated total diverged from the base total
	// beyond tolerance. The partition precondition makes conservation exact
	// barring a logic error, so this is a hard failure, never a warning.
	ErrConservation = errors.New("disagg: disaggregated total diverges from base total")

	// ErrRatioRange: an aggregate ratio lies outside [0, 1].
	ErrRatioRange = errors.New("disagg: aggregate ratio outside [0,1]")
)
