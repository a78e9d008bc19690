// SPDX-License-Identifier: MIT
// Package taxonomy: sentinel error set.
// All routines in this package return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...)) and tests match them via errors.Is. No routine
// panics on user-triggered error conditions.

package taxonomy

import "errors"

var (
	// ErrEmptyTaxonomy is returned when a taxonomy is built from zero codes.
	ErrEmptyTaxonomy = errors.New("taxonomy: empty code list")

	// ErrDuplicateCode is returned when the same sector code appears twice
	// in one taxonomy. Codes are identity; duplicates would make positional
	// lookup ambiguous.
	ErrDuplicateCode = errors.New("taxonomy: duplicate sector code")

	// ErrUnknownCode indicates that a referenced sector code is not present
	// in the taxonomy.
	ErrUnknownCode = errors.New("taxonomy: unknown sector code")

	// ErrLeadingDetail signals a malformed aggregate index: the first label
	// of the raw sequence must itself be an aggregate marker, otherwise the
	// leading detail rows have no section to belong to.
	ErrLeadingDetail = errors.New("taxonomy: index must start with an aggregate")

	// ErrDuplicatePair signals a duplicated (aggregate, member) pair in a
	// parsed aggregate index — the early symptom of a double-counted or
	// malformed report table.
	ErrDuplicatePair = errors.New("taxonomy: duplicate (aggregate, member) pair")

	// ErrOutsideDomain is returned by Reverse when an inverted mapping key
	// falls outside the declared new domain.
	ErrOutsideDomain = errors.New("taxonomy: mapping value outside declared domain")
)
