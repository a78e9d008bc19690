// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/cornerstone-data/bedrock/taxonomy"
)

// Correspondence is a strictly binary matrix relating a source taxonomy to
// a target taxonomy: rows = target, columns = source, cell (r, c) = 1 iff
// source bucket c may contribute to target sector r.
//
// Binary-ness is guaranteed by construction (both constructors validate),
// so kernels downstream treat it as an assumption, not something to
// re-check numerically.
type Correspondence struct {
	rows, cols *taxonomy.Taxonomy // rows = target, cols = source
	data       *mat.Dense
}

// NewCorrespondence builds a Correspondence from a source→targets mapping.
//
// Column order follows WithDomain if given, else the sorted mapping keys;
// row order follows WithRange if given, else the sorted union of mapped
// targets — sorting keeps construction deterministic across map iteration
// orders. The three structural checks (injective, surjective, complete) run
// after any domain/range projection and default on; relax them per call
// with the Without* options.
//
// Errors: ErrNotInjective, ErrNotSurjective, ErrNotComplete (each naming
// the offending code), ErrEmptyTaxonomy via taxonomy construction.
func NewCorrespondence(mapping map[string][]string, opts ...CorrespondenceOption) (*Correspondence, error) {
	o := gatherCorrOptions(opts...)

	cols := o.domain
	if cols == nil {
		keys := make([]string, 0, len(mapping))
		for k := range mapping {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		t, err := taxonomy.New(keys)
		if err != nil {
			return nil, fmt.Errorf("NewCorrespondence: domain: %w", err)
		}
		cols = t
	}

	rows := o.codomain
	if rows == nil {
		var targets []string
		for _, ts := range mapping {
			targets = append(targets, ts...)
		}
		slices.Sort(targets)
		targets = slices.Compact(targets)
		t, err := taxonomy.New(targets)
		if err != nil {
			return nil, fmt.Errorf("NewCorrespondence: range: %w", err)
		}
		rows = t
	}

	c := &Correspondence{rows: rows, cols: cols, data: mat.NewDense(rows.Len(), cols.Len(), nil)}
	for src, targets := range mapping {
		j, ok := cols.Index(src)
		if !ok {
			continue // outside the declared domain: projected away
		}
		for _, tgt := range targets {
			i, ok := rows.Index(tgt)
			if !ok {
				continue // outside the declared range: projected away
			}
			c.data.Set(i, j, 1)
		}
	}

	if err := c.check(o); err != nil {
		return nil, err
	}

	return c, nil
}

// CorrespondenceFromMatrix adopts a labeled matrix as a correspondence,
// re-validating that every cell is exactly 0 or 1. The structural checks
// obey the same options as NewCorrespondence.
func CorrespondenceFromMatrix(m *Matrix, opts ...CorrespondenceOption) (*Correspondence, error) {
	if m == nil {
		return nil, fmt.Errorf("CorrespondenceFromMatrix: %w", ErrNilTable)
	}
	if err := validateBinary(m.data.RawMatrix().Data); err != nil {
		return nil, fmt.Errorf("CorrespondenceFromMatrix: %w", err)
	}

	c := &Correspondence{rows: m.rows, cols: m.cols, data: mat.DenseCopyOf(m.data)}
	if err := c.check(gatherCorrOptions(opts...)); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Correspondence) check(o corrOptions) error {
	var i, j int
	var s float64
	if o.injective || o.surjective {
		for i = 0; i < c.rows.Len(); i++ {
			s = 0
			for j = 0; j < c.cols.Len(); j++ {
				s += c.data.At(i, j)
			}
			if o.injective && s > 1 {
				return fmt.Errorf("correspondence: target %q claimed %g times: %w", c.rows.Code(i), s, ErrNotInjective)
			}
			if o.surjective && s < 1 {
				return fmt.Errorf("correspondence: target %q never claimed: %w", c.rows.Code(i), ErrNotSurjective)
			}
		}
	}
	if o.complete {
		for j = 0; j < c.cols.Len(); j++ {
			s = 0
			for i = 0; i < c.rows.Len(); i++ {
				s += c.data.At(i, j)
			}
			if s < 1 {
				return fmt.Errorf("correspondence: source %q maps nowhere: %w", c.cols.Code(j), ErrNotComplete)
			}
		}
	}

	return nil
}

// Rows returns the target taxonomy.
func (c *Correspondence) Rows() *taxonomy.Taxonomy { return c.rows }

// Cols returns the source taxonomy.
func (c *Correspondence) Cols() *taxonomy.Taxonomy { return c.cols }

// AtPos returns the cell at positions (i, j); always exactly 0 or 1.
func (c *Correspondence) AtPos(i, j int) float64 { return c.data.At(i, j) }

// Raw exposes the backing storage for read-only kernel access.
func (c *Correspondence) Raw() *mat.Dense { return c.data }

// ColSum returns the number of target sectors source column j maps to.
// A zero column sum means the source bucket's quantity has no destination.
func (c *Correspondence) ColSum(j int) float64 {
	var s float64
	for i := 0; i < c.rows.Len(); i++ {
		s += c.data.At(i, j)
	}

	return s
}

// RowSum returns the number of source buckets claiming target row i.
func (c *Correspondence) RowSum(i int) float64 {
	var s float64
	for j := 0; j < c.cols.Len(); j++ {
		s += c.data.At(i, j)
	}

	return s
}

// Matrix returns the correspondence as a labeled Matrix (copy).
func (c *Correspondence) Matrix() *Matrix {
	return &Matrix{rows: c.rows, cols: c.cols, data: mat.DenseCopyOf(c.data)}
}
