// SPDX-License-Identifier: MIT
// Package reflection: sentinel error set. Alignment violations reuse the
// table package's sentinels (table.ErrIndexMismatch et al.) so callers have
// one vocabulary for labeled-axis failures.

package reflection

import "errors"

// ErrVectorFallback is returned when WithFallbackWeights is passed to
// ReflectVector; fallback weights are a matrix-reflection facility.
var ErrVectorFallback = errors.New("reflection: fallback weights are not supported for vector reflection")
