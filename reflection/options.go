// SPDX-License-Identifier: MIT

// Package reflection: functional configuration for the reallocation engine.
// Defaults are the conservative posture: normalize shares, no fallback, no
// expected drops, log to slog.Default().

package reflection

import (
	"log/slog"

	"github.com/cornerstone-data/bedrock/table"
)

// Numeric policy (single source of truth).
const (
	// DefaultConservationRTol is the relative tolerance of the soft
	// conservation check run after a normalizing reflection.
	DefaultConservationRTol = 1e-4

	// conservationATol absorbs the comparison when the restricted base sum
	// is itself zero.
	conservationATol = 1e-8

	// DefaultNormalize divides each distributed share by the eligible
	// weight total, so a source cell's full value lands on the target.
	DefaultNormalize = true
)

// Option configures a single reflection call.
type Option func(*options)

type options struct {
	normalize          bool
	fallback           *table.Matrix
	expectedRowDropped map[string]struct{}
	expectedColDropped map[string]struct{}
	logger             *slog.Logger
}

func defaultOptions() options {
	return options{
		normalize: DefaultNormalize,
		logger:    slog.Default(),
	}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithoutNormalization adds the raw weighted share instead of dividing by
// the eligible weight total — for weights that are already normalized, or
// when non-normalized accumulation is the point. Disables the conservation
// check, which is meaningless without normalization.
func WithoutNormalization() Option {
	return func(o *options) { o.normalize = false }
}

// WithFallbackWeights supplies a second weight matrix consulted only for
// source cells whose primary eligible weight sums to zero. Must share the
// weights' taxonomies. Matrix reflection only.
func WithFallbackWeights(fallback *table.Matrix) Option {
	return func(o *options) { o.fallback = fallback }
}

// WithExpectedRowDropped declares source row labels whose values may be
// silently dropped (no target correspondence, no nonzero weight) without a
// warning — known-discontinued sectors, residual rows, and the like.
func WithExpectedRowDropped(codes ...string) Option {
	return func(o *options) {
		if o.expectedRowDropped == nil {
			o.expectedRowDropped = make(map[string]struct{}, len(codes))
		}
		for _, c := range codes {
			o.expectedRowDropped[c] = struct{}{}
		}
	}
}

// WithExpectedColDropped is WithExpectedRowDropped for source columns.
func WithExpectedColDropped(codes ...string) Option {
	return func(o *options) {
		if o.expectedColDropped == nil {
			o.expectedColDropped = make(map[string]struct{}, len(codes))
		}
		for _, c := range codes {
			o.expectedColDropped[c] = struct{}{}
		}
	}
}

// WithLogger routes the engine's diagnostic warnings (dropped cells, soft
// conservation misses) to l instead of slog.Default(). Logging is a side
// channel only, never a contract surface.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
