// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cornerstone-data/bedrock/taxonomy"
)

// Vector is a real-valued series indexed by a Taxonomy.
//
// Values may be negative (economic quantities) or constrained non-negative
// by the caller (physical quantities); the type itself only rejects NaN and
// ±Inf. Construction copies values in; operations construct fresh results.
type Vector struct {
	index *taxonomy.Taxonomy
	data  *mat.VecDense
}

// NewVector builds a Vector over index from values, positionally aligned.
//
// Errors: ErrNilTaxonomy, ErrLengthMismatch, ErrNaNInf.
func NewVector(index *taxonomy.Taxonomy, values []float64) (*Vector, error) {
	if index == nil {
		return nil, fmt.Errorf("NewVector: %w", ErrNilTaxonomy)
	}
	if len(values) != index.Len() {
		return nil, fmt.Errorf("NewVector: %d values for %d codes: %w", len(values), index.Len(), ErrLengthMismatch)
	}
	if err := ValidateFinite(values); err != nil {
		return nil, fmt.Errorf("NewVector: %w", err)
	}

	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{index: index, data: mat.NewVecDense(len(data), data)}, nil
}

// NewZeroVector builds an all-zero Vector over index.
func NewZeroVector(index *taxonomy.Taxonomy) (*Vector, error) {
	if index == nil {
		return nil, fmt.Errorf("NewZeroVector: %w", ErrNilTaxonomy)
	}

	return &Vector{index: index, data: mat.NewVecDense(index.Len(), nil)}, nil
}

// NewVectorFromMap builds a Vector over index from a sparse code→value map;
// codes absent from byCode get 0. A key outside index is ErrUnknownSector —
// dropping it silently would lose quantity.
func NewVectorFromMap(index *taxonomy.Taxonomy, byCode map[string]float64) (*Vector, error) {
	v, err := NewZeroVector(index)
	if err != nil {
		return nil, err
	}
	for code, val := range byCode {
		i, ok := index.Index(code)
		if !ok {
			return nil, fmt.Errorf("NewVectorFromMap: %q: %w", code, ErrUnknownSector)
		}
		if err = ValidateFinite([]float64{val}); err != nil {
			return nil, fmt.Errorf("NewVectorFromMap: %q: %w", code, ErrNaNInf)
		}
		v.data.SetVec(i, val)
	}

	return v, nil
}

// Index returns the vector's taxonomy.
func (v *Vector) Index() *taxonomy.Taxonomy { return v.index }

// Len returns the number of entries.
func (v *Vector) Len() int { return v.index.Len() }

// At returns the value for code, or ErrUnknownSector.
func (v *Vector) At(code string) (float64, error) {
	i, ok := v.index.Index(code)
	if !ok {
		return 0, fmt.Errorf("Vector.At: %q: %w", code, ErrUnknownSector)
	}

	return v.data.AtVec(i), nil
}

// AtPos returns the value at position i. The caller guarantees bounds.
func (v *Vector) AtPos(i int) float64 { return v.data.AtVec(i) }

// Values returns a copy of the values in taxonomy order.
func (v *Vector) Values() []float64 {
	out := make([]float64, v.data.Len())
	copy(out, v.data.RawVector().Data)

	return out
}

// Raw exposes the backing storage for read-only kernel access by sibling
// packages. Mutating it violates the package's immutability convention.
func (v *Vector) Raw() *mat.VecDense { return v.data }

// Sum returns the total of all entries.
func (v *Vector) Sum() float64 {
	var s float64
	for i := 0; i < v.data.Len(); i++ {
		s += v.data.AtVec(i)
	}

	return s
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	out := mat.NewVecDense(v.data.Len(), nil)
	out.CopyVec(v.data)

	return &Vector{index: v.index, data: out}
}

// Scale returns v multiplied by k, entry-wise.
func (v *Vector) Scale(k float64) *Vector {
	out := v.Clone()
	out.data.ScaleVec(k, v.data)

	return out
}

// MulElem returns the entry-wise product v ⊙ o. Indices must be identical.
func (v *Vector) MulElem(o *Vector) (*Vector, error) {
	if o == nil {
		return nil, fmt.Errorf("Vector.MulElem: %w", ErrNilTable)
	}
	if err := ValidateIndexEqual(o.index, v.index, "Vector.MulElem"); err != nil {
		return nil, err
	}

	out := v.Clone()
	out.data.MulElemVec(v.data, o.data)

	return out, nil
}

// Add returns the entry-wise sum v + o. Indices must be identical.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if o == nil {
		return nil, fmt.Errorf("Vector.Add: %w", ErrNilTable)
	}
	if err := ValidateIndexEqual(o.index, v.index, "Vector.Add"); err != nil {
		return nil, err
	}

	out := v.Clone()
	out.data.AddVec(v.data, o.data)

	return out, nil
}

// Reindex projects v onto target: entries whose code exists in both keep
// their value, codes new to target get fill, codes absent from target are
// dropped. This is the outbound "reindex with fill 0.0" every allocator
// ends with.
func (v *Vector) Reindex(target *taxonomy.Taxonomy, fill float64) (*Vector, error) {
	if target == nil {
		return nil, fmt.Errorf("Vector.Reindex: %w", ErrNilTaxonomy)
	}

	data := make([]float64, target.Len())
	for i, code := range target.Codes() {
		if j, ok := v.index.Index(code); ok {
			data[i] = v.data.AtVec(j)
		} else {
			data[i] = fill
		}
	}

	return NewVector(target, data)
}
