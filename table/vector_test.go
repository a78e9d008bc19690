// SPDX-License-Identifier: MIT

package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

func TestNewVector_Basics(t *testing.T) {
	t.Parallel()

	tax := taxonomy.MustNew("x", "y", "z")
	v, err := table.NewVector(tax, []float64{1, -2, 3.5})
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []float64{1, -2, 3.5}, v.Values())
	assert.InDelta(t, 2.5, v.Sum(), 1e-12)

	got, err := v.At("y")
	require.NoError(t, err)
	assert.Equal(t, -2.0, got)

	_, err = v.At("missing")
	assert.ErrorIs(t, err, table.ErrUnknownSector)
}

func TestNewVector_Rejections(t *testing.T) {
	t.Parallel()

	tax := taxonomy.MustNew("x", "y")

	_, err := table.NewVector(nil, []float64{1, 2})
	assert.ErrorIs(t, err, table.ErrNilTaxonomy)

	_, err = table.NewVector(tax, []float64{1})
	assert.ErrorIs(t, err, table.ErrLengthMismatch)

	_, err = table.NewVector(tax, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, table.ErrNaNInf)

	_, err = table.NewVector(tax, []float64{math.Inf(1), 0})
	assert.ErrorIs(t, err, table.ErrNaNInf)
}

func TestNewVectorFromMap(t *testing.T) {
	t.Parallel()

	tax := taxonomy.MustNew("a", "b", "c")
	v, err := table.NewVectorFromMap(tax, map[string]float64{"b": 7})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7, 0}, v.Values())

	_, err = table.NewVectorFromMap(tax, map[string]float64{"nope": 1})
	assert.ErrorIs(t, err, table.ErrUnknownSector)
}

func TestVector_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	tax := taxonomy.MustNew("a", "b")
	v, err := table.NewVector(tax, []float64{1, 2})
	require.NoError(t, err)

	c := v.Clone()
	c.Raw().SetVec(0, 99)

	assert.Equal(t, 1.0, v.AtPos(0), "Clone must not alias the original")
}

func TestVector_ScaleMulAdd(t *testing.T) {
	t.Parallel()

	tax := taxonomy.MustNew("a", "b")
	v, err := table.NewVector(tax, []float64{2, 3})
	require.NoError(t, err)
	w, err := table.NewVector(tax, []float64{10, -1})
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 6}, v.Scale(2).Values())

	prod, err := v.MulElem(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, -3}, prod.Values())

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 2}, sum.Values())

	// Same codes, different order: hard index mismatch, not realignment.
	perm, err := table.NewVector(taxonomy.MustNew("b", "a"), []float64{3, 2})
	require.NoError(t, err)
	_, err = v.MulElem(perm)
	assert.ErrorIs(t, err, table.ErrIndexMismatch)
}

func TestVector_Reindex(t *testing.T) {
	t.Parallel()

	src := taxonomy.MustNew("x", "y")
	v, err := table.NewVector(src, []float64{3, 6})
	require.NoError(t, err)

	target := taxonomy.MustNew("y", "z", "x")
	got, err := v.Reindex(target, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{6, 0, 3}, got.Values())
	assert.True(t, got.Index().Equal(target))
}
