// SPDX-License-Identifier: MIT

package disagg

import (
	"log/slog"

	"github.com/cornerstone-data/bedrock/table"
)

// Numeric policy (single source of truth).
const (
	// DefaultConservationRTol is the relative tolerance of the hard
	// total-preservation postcondition (0.1%).
	DefaultConservationRTol = 1e-3

	// columnNormTol bounds the deviation of a normalized correspondence
	// column's sum from 1.
	columnNormTol = 1e-6
)

// Option configures a Disaggregate call.
type Option func(*options)

type options struct {
	alt    *table.Vector
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.Default()}
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

// WithAltWeights supplies alternate weights substituted, column by column,
// for aggregates whose primary weighted correspondence sums to zero.
// Without it, a zero-weight aggregate's value is effectively dropped (its
// column normalizes to zero) and the hard conservation postcondition will
// catch any material loss.
func WithAltWeights(alt *table.Vector) Option {
	return func(o *options) { o.alt = alt }
}

// WithLogger routes diagnostic warnings to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
