// SPDX-License-Identifier: MIT

// Code-mapping helpers for bridging classifications: a correspondence matrix
// usually starts life as a source→targets mapping assembled by composing and
// inverting published concordances (e.g. detail → summary → final sectors).
// Mapping values are deduplicated and sorted so downstream construction is
// deterministic regardless of map iteration order.

package taxonomy

import (
	"fmt"
	"slices"
)

// Traverse composes two code mappings: for every source code in m01, follow
// each intermediate code into m12 and collect the destination codes.
// Intermediates absent from m12 contribute nothing. Results are
// deduplicated and sorted.
//
// Complexity: O(total fan-out + sort).
func Traverse[S ~string, M ~string, D ~string](m01 map[S][]M, m12 map[M][]D) map[S][]D {
	out := make(map[S][]D, len(m01))
	for s, mids := range m01 {
		var ds []D
		for _, m := range mids {
			ds = append(ds, m12[m]...)
		}
		out[s] = dedupSorted(ds)
	}

	return out
}

// Reverse inverts a code mapping: every (source → destination) edge becomes
// (destination → source). Results are deduplicated and sorted.
//
// If newDomain is non-nil, every key of the reversed mapping must belong to
// it; a stray key returns ErrOutsideDomain (the original mapping referenced
// a code the target classification does not define).
func Reverse[S ~string, D ~string](m map[S][]D, newDomain []D) (map[D][]S, error) {
	out := make(map[D][]S)
	for s, ds := range m {
		for _, d := range ds {
			out[d] = append(out[d], s)
		}
	}
	for d, ss := range out {
		out[d] = dedupSorted(ss)
	}

	if newDomain != nil {
		domain := make(map[D]struct{}, len(newDomain))
		for _, d := range newDomain {
			domain[d] = struct{}{}
		}
		for d := range out {
			if _, ok := domain[d]; !ok {
				return nil, fmt.Errorf("Reverse: key %q: %w", string(d), ErrOutsideDomain)
			}
		}
	}

	return out, nil
}

// dedupSorted sorts vs and removes adjacent duplicates, in place.
func dedupSorted[T ~string](vs []T) []T {
	slices.Sort(vs)

	return slices.Compact(vs)
}
