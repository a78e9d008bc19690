// SPDX-License-Identifier: MIT

package taxonomy

import "fmt"

// Total is the literal member value standing for an aggregate's own row in a
// parsed two-level index. Report tables print a section header, then the
// section's detail rows; the header row carries the section subtotal, which
// we file under (aggregate, Total).
const Total = "TOTAL"

// Pair is one entry of a two-level (aggregate, member) index.
type Pair struct {
	Aggregate string
	Member    string
}

// AggIndex is an ordered two-level index over report rows.
type AggIndex []Pair

// Position returns the position of (aggregate, member) in the index and
// whether it is present. Linear scan; indices are report-sized (tens to low
// hundreds of rows).
func (ix AggIndex) Position(aggregate, member string) (int, bool) {
	for i, p := range ix {
		if p.Aggregate == aggregate && p.Member == member {
			return i, true
		}
	}

	return 0, false
}

// ParseIndexWithAggregates parses a flat ordered list of raw row labels,
// where the labels in aggregates are known "section header" rows immediately
// followed by their detail rows, into a two-level (aggregate, member) index.
//
// Single-pass state machine: an aggregate label opens a new section and is
// emitted as (label, Total); every other label is emitted as a member of the
// currently open section.
//
// Errors (hard, per the data-quality contract):
//   - ErrLeadingDetail if labels[0] is not an aggregate marker — the table
//     is malformed and no section is open for the first rows.
//   - ErrDuplicatePair if any (aggregate, member) pair repeats — a repeated
//     pair means the report double-counts a row and must be caught before
//     any quantity is read through the index.
//
// Complexity: O(n) over len(labels).
func ParseIndexWithAggregates(labels, aggregates []string) (AggIndex, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("ParseIndexWithAggregates: %w", ErrLeadingDetail)
	}

	aggSet := make(map[string]struct{}, len(aggregates))
	for _, a := range aggregates {
		aggSet[a] = struct{}{}
	}
	if _, ok := aggSet[labels[0]]; !ok {
		return nil, fmt.Errorf("ParseIndexWithAggregates: first label %q: %w", labels[0], ErrLeadingDetail)
	}

	out := make(AggIndex, 0, len(labels))
	seen := make(map[Pair]struct{}, len(labels))

	var currentAgg string
	for _, label := range labels {
		var p Pair
		if _, ok := aggSet[label]; ok {
			currentAgg = label
			p = Pair{Aggregate: currentAgg, Member: Total}
		} else {
			p = Pair{Aggregate: currentAgg, Member: label}
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("ParseIndexWithAggregates: (%q, %q): %w", p.Aggregate, p.Member, ErrDuplicatePair)
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}
