// SPDX-License-Identifier: MIT

// Package table: functional configuration for correspondence construction.
// Defaults are the strict posture: all three structural checks on. Relaxing
// a check is a per-call, explicit decision (e.g. the reflection engine's
// fan-out correspondences are legitimately non-injective).

package table

import "github.com/cornerstone-data/bedrock/taxonomy"

// Structural-check defaults (single source of truth).
const (
	// DefaultInjective requires each target sector to be claimed by at most
	// one source bucket (row sums ≤ 1).
	DefaultInjective = true

	// DefaultSurjective requires each target sector to be claimed by at
	// least one source bucket (row sums ≥ 1).
	DefaultSurjective = true

	// DefaultComplete requires each source bucket to map somewhere
	// (column sums ≥ 1).
	DefaultComplete = true
)

// CorrespondenceOption configures NewCorrespondence.
type CorrespondenceOption func(*corrOptions)

type corrOptions struct {
	domain     *taxonomy.Taxonomy // column (source) ordering, optional
	codomain   *taxonomy.Taxonomy // row (target) ordering, optional
	injective  bool
	surjective bool
	complete   bool
}

func defaultCorrOptions() corrOptions {
	return corrOptions{
		injective:  DefaultInjective,
		surjective: DefaultSurjective,
		complete:   DefaultComplete,
	}
}

func gatherCorrOptions(user ...CorrespondenceOption) corrOptions {
	o := defaultCorrOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithDomain fixes the source (column) taxonomy and its order. Mapping keys
// outside the domain are dropped; domain codes absent from the mapping
// become zero columns (and then trip the complete check unless disabled).
func WithDomain(t *taxonomy.Taxonomy) CorrespondenceOption {
	return func(o *corrOptions) { o.domain = t }
}

// WithRange fixes the target (row) taxonomy and its order. Mapped targets
// outside the range are dropped; range codes never mapped to become zero
// rows (and then trip the surjective check unless disabled).
func WithRange(t *taxonomy.Taxonomy) CorrespondenceOption {
	return func(o *corrOptions) { o.codomain = t }
}

// WithoutInjectiveCheck permits a target sector to be claimed by several
// source buckets.
func WithoutInjectiveCheck() CorrespondenceOption {
	return func(o *corrOptions) { o.injective = false }
}

// WithoutSurjectiveCheck permits target sectors that no source maps to.
func WithoutSurjectiveCheck() CorrespondenceOption {
	return func(o *corrOptions) { o.surjective = false }
}

// WithoutCompleteCheck permits source buckets that map to nothing (their
// quantity is then legitimately dropped by the reflection engine).
func WithoutCompleteCheck() CorrespondenceOption {
	return func(o *corrOptions) { o.complete = false }
}
