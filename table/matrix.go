// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cornerstone-data/bedrock/taxonomy"
)

// Matrix is a real-valued table indexed by a row Taxonomy and a column
// Taxonomy (e.g. a use table: row = commodity consumed, column = consuming
// industry). Storage is dense row-major via gonum.
type Matrix struct {
	rows, cols *taxonomy.Taxonomy
	data       *mat.Dense
}

// NewMatrix builds a Matrix over rows×cols from values in row-major order.
//
// Errors: ErrNilTaxonomy, ErrLengthMismatch, ErrNaNInf.
func NewMatrix(rows, cols *taxonomy.Taxonomy, values []float64) (*Matrix, error) {
	if rows == nil || cols == nil {
		return nil, fmt.Errorf("NewMatrix: %w", ErrNilTaxonomy)
	}
	if len(values) != rows.Len()*cols.Len() {
		return nil, fmt.Errorf("NewMatrix: %d values for %d×%d: %w",
			len(values), rows.Len(), cols.Len(), ErrLengthMismatch)
	}
	if err := ValidateFinite(values); err != nil {
		return nil, fmt.Errorf("NewMatrix: %w", err)
	}

	data := make([]float64, len(values))
	copy(data, values)

	return &Matrix{rows: rows, cols: cols, data: mat.NewDense(rows.Len(), cols.Len(), data)}, nil
}

// NewZeroMatrix builds an all-zero Matrix over rows×cols.
func NewZeroMatrix(rows, cols *taxonomy.Taxonomy) (*Matrix, error) {
	if rows == nil || cols == nil {
		return nil, fmt.Errorf("NewZeroMatrix: %w", ErrNilTaxonomy)
	}

	return &Matrix{rows: rows, cols: cols, data: mat.NewDense(rows.Len(), cols.Len(), nil)}, nil
}

// Rows returns the row taxonomy.
func (m *Matrix) Rows() *taxonomy.Taxonomy { return m.rows }

// Cols returns the column taxonomy.
func (m *Matrix) Cols() *taxonomy.Taxonomy { return m.cols }

// At returns the value at (rowCode, colCode), or ErrUnknownSector.
func (m *Matrix) At(rowCode, colCode string) (float64, error) {
	i, ok := m.rows.Index(rowCode)
	if !ok {
		return 0, fmt.Errorf("Matrix.At: row %q: %w", rowCode, ErrUnknownSector)
	}
	j, ok := m.cols.Index(colCode)
	if !ok {
		return 0, fmt.Errorf("Matrix.At: col %q: %w", colCode, ErrUnknownSector)
	}

	return m.data.At(i, j), nil
}

// AtPos returns the value at positions (i, j). The caller guarantees bounds.
func (m *Matrix) AtPos(i, j int) float64 { return m.data.At(i, j) }

// Raw exposes the backing storage for read-only kernel access by sibling
// packages. Mutating it violates the package's immutability convention.
func (m *Matrix) Raw() *mat.Dense { return m.data }

// Sum returns the total over every cell.
func (m *Matrix) Sum() float64 { return mat.Sum(m.data) }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := mat.DenseCopyOf(m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: out}
}

// Scale returns m multiplied by k, cell-wise.
func (m *Matrix) Scale(k float64) *Matrix {
	out := m.Clone()
	out.data.Scale(k, m.data)

	return out
}

// MulElem returns the cell-wise product m ⊙ o. Both taxonomies must match.
func (m *Matrix) MulElem(o *Matrix) (*Matrix, error) {
	if o == nil {
		return nil, fmt.Errorf("Matrix.MulElem: %w", ErrNilTable)
	}
	if err := ValidateIndexEqual(o.rows, m.rows, "Matrix.MulElem rows"); err != nil {
		return nil, err
	}
	if err := ValidateIndexEqual(o.cols, m.cols, "Matrix.MulElem cols"); err != nil {
		return nil, err
	}

	out := m.Clone()
	out.data.MulElem(m.data, o.data)

	return out, nil
}

// Mul returns the matrix product m·o. m's column taxonomy must equal o's
// row taxonomy; the result is indexed m.rows × o.cols.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if o == nil {
		return nil, fmt.Errorf("Matrix.Mul: %w", ErrNilTable)
	}
	if err := ValidateIndexEqual(o.rows, m.cols, "Matrix.Mul inner"); err != nil {
		return nil, err
	}

	out := mat.NewDense(m.rows.Len(), o.cols.Len(), nil)
	out.Mul(m.data, o.data)

	return &Matrix{rows: m.rows, cols: o.cols, data: out}, nil
}

// MulVec returns the matrix-vector product m·v over m's row taxonomy.
// m's column taxonomy must equal v's index.
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("Matrix.MulVec: %w", ErrNilTable)
	}
	if err := ValidateIndexEqual(v.index, m.cols, "Matrix.MulVec"); err != nil {
		return nil, err
	}

	out := mat.NewVecDense(m.rows.Len(), nil)
	out.MulVec(m.data, v.data)

	return &Vector{index: m.rows, data: out}, nil
}

// RowSums reduces each row to its total, indexed by the row taxonomy
// (industry output g when m is a make table).
func (m *Matrix) RowSums() *Vector {
	n := m.rows.Len()
	out := mat.NewVecDense(n, nil)
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < m.cols.Len(); j++ {
			s += m.data.At(i, j)
		}
		out.SetVec(i, s)
	}

	return &Vector{index: m.rows, data: out}
}

// ColSums reduces each column to its total, indexed by the column taxonomy
// (commodity output q when m is a make table).
func (m *Matrix) ColSums() *Vector {
	n := m.cols.Len()
	out := mat.NewVecDense(n, nil)
	var i, j int
	var s float64
	for j = 0; j < n; j++ {
		s = 0
		for i = 0; i < m.rows.Len(); i++ {
			s += m.data.At(i, j)
		}
		out.SetVec(j, s)
	}

	return &Vector{index: m.cols, data: out}
}

// Col extracts column colCode as a Vector over the row taxonomy — the usual
// way an allocator pulls "what every industry buys from sector X" out of a
// use table.
func (m *Matrix) Col(colCode string) (*Vector, error) {
	j, ok := m.cols.Index(colCode)
	if !ok {
		return nil, fmt.Errorf("Matrix.Col: %q: %w", colCode, ErrUnknownSector)
	}

	data := make([]float64, m.rows.Len())
	mat.Col(data, j, m.data)

	return NewVector(m.rows, data)
}

// Row extracts row rowCode as a Vector over the column taxonomy.
func (m *Matrix) Row(rowCode string) (*Vector, error) {
	i, ok := m.rows.Index(rowCode)
	if !ok {
		return nil, fmt.Errorf("Matrix.Row: %q: %w", rowCode, ErrUnknownSector)
	}

	data := make([]float64, m.cols.Len())
	mat.Row(data, i, m.data)

	return NewVector(m.cols, data)
}

// DivideColumns returns m with column j divided by d[j], where d is indexed
// by m's column taxonomy. A zero denominator yields a zero column instead
// of ±Inf/NaN — the normalization convention used when an output vector
// legitimately contains zero-output sectors.
func (m *Matrix) DivideColumns(d *Vector) (*Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("Matrix.DivideColumns: %w", ErrNilTable)
	}
	if err := ValidateIndexEqual(d.index, m.cols, "Matrix.DivideColumns"); err != nil {
		return nil, err
	}

	out := m.Clone()
	var i, j int
	var den float64
	for j = 0; j < m.cols.Len(); j++ {
		den = d.data.AtVec(j)
		for i = 0; i < m.rows.Len(); i++ {
			if den == 0 {
				out.data.Set(i, j, 0)
			} else {
				out.data.Set(i, j, m.data.At(i, j)/den)
			}
		}
	}

	return out, nil
}
