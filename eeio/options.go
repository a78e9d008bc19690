// SPDX-License-Identifier: MIT

package eeio

import "log/slog"

// largeInversionSize is the order above which TotalRequirements logs
// progress, since dense inversion at that scale takes noticeable time.
const largeInversionSize = 1000

// Option configures a TotalRequirements call.
type Option func(*options)

type options struct {
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

// WithLogger routes diagnostics to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
