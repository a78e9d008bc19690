// SPDX-License-Identifier: MIT
// Package table: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the table
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package table

import "errors"

var (
	// ErrNilTaxonomy indicates a nil *taxonomy.Taxonomy was passed to a
	// constructor.
	ErrNilTaxonomy = errors.New("table: nil taxonomy")

	// ErrNilTable indicates a nil Vector/Matrix/Correspondence receiver or
	// argument.
	ErrNilTable = errors.New("table: nil table")

	// ErrLengthMismatch indicates that a value slice does not match the
	// cardinality of its taxonomy.
	ErrLengthMismatch = errors.New("table: labels and values length mismatch")

	// ErrIndexMismatch indicates that two labeled operands do not share the
	// same ordered taxonomy. This is the explicit form of the alignment
	// check a dataframe index comparison used to provide; it must stay a
	// hard error.
	ErrIndexMismatch = errors.New("table: index mismatch")

	// ErrUnknownSector indicates a sector code absent from the taxonomy of
	// the table being addressed.
	ErrUnknownSector = errors.New("table: unknown sector code")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required (all ingestion paths).
	ErrNaNInf = errors.New("table: NaN or Inf encountered")

	// ErrNonBinary is returned when a correspondence cell is neither
	// exactly 0 nor exactly 1.
	ErrNonBinary = errors.New("table: correspondence cell is not 0 or 1")

	// ErrNotInjective: a target sector is claimed by more than one source
	// bucket (a correspondence row sums above 1) while the injective check
	// is enabled.
	ErrNotInjective = errors.New("table: correspondence is not injective")

	// ErrNotSurjective: a target sector is claimed by no source bucket (a
	// correspondence row sums to 0) while the surjective check is enabled.
	ErrNotSurjective = errors.New("table: correspondence is not surjective")

	// ErrNotComplete: a source bucket maps to no target sector (a
	// correspondence column sums to 0) while the complete check is enabled.
	ErrNotComplete = errors.New("table: correspondence is not complete")
)
