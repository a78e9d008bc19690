// SPDX-License-Identifier: MIT

package eeio

import "errors"

var (
	// ErrNonSquare: the direct-requirements table must be square to invert.
	ErrNonSquare = errors.New("eeio: direct requirements table is not square")

	// ErrSingular: (I−A) has no inverse. An economy whose direct
	// requirements consume a full unit of some commodity per unit produced
	// has no finite total-requirements solution.
	ErrSingular = errors.New("eeio: (I-A) is singular")
)
