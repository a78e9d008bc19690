// SPDX-License-Identifier: MIT

package taxonomy

import "fmt"

// Taxonomy is a fixed, ordered sequence of unique sector codes.
//
// A Taxonomy is immutable after construction: the code slice is copied in,
// Codes returns a copy out, and every accessor is read-only, so a single
// Taxonomy value may be shared freely across concurrent callers.
type Taxonomy struct {
	codes []string       // ordered code list, owned by the taxonomy
	pos   map[string]int // code -> position, for O(1) lookup
}

// New builds a Taxonomy from an ordered list of sector codes.
//
// Errors:
//   - ErrEmptyTaxonomy if codes is empty.
//   - ErrDuplicateCode if any code repeats (the offending code is included
//     in the wrapped message).
//
// Complexity: O(n) time and memory.
func New(codes []string) (*Taxonomy, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyTaxonomy
	}

	t := &Taxonomy{
		codes: make([]string, len(codes)),
		pos:   make(map[string]int, len(codes)),
	}
	for i, code := range codes {
		if _, dup := t.pos[code]; dup {
			return nil, fmt.Errorf("New: %q: %w", code, ErrDuplicateCode)
		}
		t.codes[i] = code
		t.pos[code] = i
	}

	return t, nil
}

// MustNew is New for programmer-owned constant code lists (the fixed target
// taxonomies compiled into the caller). It panics on error; never feed it
// externally sourced labels.
func MustNew(codes ...string) *Taxonomy {
	t, err := New(codes)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of codes in the taxonomy.
func (t *Taxonomy) Len() int { return len(t.codes) }

// Codes returns a copy of the ordered code list.
func (t *Taxonomy) Codes() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)

	return out
}

// Code returns the code at position i. The caller guarantees 0 <= i < Len;
// out-of-range positions panic like any slice access (programmer error).
func (t *Taxonomy) Code(i int) string { return t.codes[i] }

// Index returns the position of code and whether it is present.
func (t *Taxonomy) Index(code string) (int, bool) {
	i, ok := t.pos[code]

	return i, ok
}

// Contains reports whether code belongs to the taxonomy.
func (t *Taxonomy) Contains(code string) bool {
	_, ok := t.pos[code]

	return ok
}

// Equal reports order-sensitive identity of two taxonomies. This is the
// alignment assertion every table operation in this module is built on:
// same codes in a different order is NOT equal.
func (t *Taxonomy) Equal(o *Taxonomy) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.codes) != len(o.codes) {
		return false
	}
	for i, code := range t.codes {
		if o.codes[i] != code {
			return false
		}
	}

	return true
}
