// SPDX-License-Identifier: MIT

package allocation

import "errors"

var (
	// ErrLengthMismatch: the label and value columns of a report disagree
	// in length.
	ErrLengthMismatch = errors.New("allocation: labels and values differ in length")

	// ErrMissingEntry: no (gas, category) row exists in the inventory.
	ErrMissingEntry = errors.New("allocation: no such inventory entry")

	// ErrZeroWeights: the allocation weights for the chosen sectors sum to
	// zero, so no proportional split exists.
	ErrZeroWeights = errors.New("allocation: allocation weights sum to zero")
)
