// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

func TestNewCorrespondence_DeterministicShape(t *testing.T) {
	t.Parallel()

	c, err := table.NewCorrespondence(map[string][]string{
		"coarseB": {"fine3"},
		"coarseA": {"fine2", "fine1"},
	})
	require.NoError(t, err)

	// Sorted keys for columns, sorted target union for rows.
	assert.Equal(t, []string{"coarseA", "coarseB"}, c.Cols().Codes())
	assert.Equal(t, []string{"fine1", "fine2", "fine3"}, c.Rows().Codes())

	assert.Equal(t, 1.0, c.AtPos(0, 0)) // fine1 <- coarseA
	assert.Equal(t, 1.0, c.AtPos(1, 0)) // fine2 <- coarseA
	assert.Equal(t, 1.0, c.AtPos(2, 1)) // fine3 <- coarseB
	assert.Equal(t, 0.0, c.AtPos(2, 0))

	assert.Equal(t, 2.0, c.ColSum(0))
	assert.Equal(t, 1.0, c.RowSum(1))
}

func TestNewCorrespondence_StructuralChecks(t *testing.T) {
	t.Parallel()

	// fine1 claimed by both sources: not injective.
	_, err := table.NewCorrespondence(map[string][]string{
		"a": {"fine1"},
		"b": {"fine1", "fine2"},
	})
	assert.ErrorIs(t, err, table.ErrNotInjective)

	// Same mapping is accepted once the check is relaxed.
	c, err := table.NewCorrespondence(map[string][]string{
		"a": {"fine1"},
		"b": {"fine1", "fine2"},
	}, table.WithoutInjectiveCheck())
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.RowSum(0))
}

func TestNewCorrespondence_RangeAndDomainProjection(t *testing.T) {
	t.Parallel()

	rng := taxonomy.MustNew("fine1", "fine2", "fineUnmapped")

	// fineUnmapped has no source: surjective check trips.
	_, err := table.NewCorrespondence(map[string][]string{
		"a": {"fine1", "fine2"},
	}, table.WithRange(rng))
	assert.ErrorIs(t, err, table.ErrNotSurjective)

	c, err := table.NewCorrespondence(map[string][]string{
		"a": {"fine1", "fine2"},
	}, table.WithRange(rng), table.WithoutSurjectiveCheck())
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.RowSum(2))

	// A domain code with no mapping is an empty source bucket.
	dom := taxonomy.MustNew("a", "ghost")
	_, err = table.NewCorrespondence(map[string][]string{
		"a": {"fine1", "fine2"},
	}, table.WithDomain(dom), table.WithRange(rng), table.WithoutSurjectiveCheck())
	assert.ErrorIs(t, err, table.ErrNotComplete)
}

func TestCorrespondenceFromMatrix_RejectsNonBinary(t *testing.T) {
	t.Parallel()

	rows := taxonomy.MustNew("f1", "f2")
	cols := taxonomy.MustNew("g")

	m, err := table.NewMatrix(rows, cols, []float64{1, 0.5})
	require.NoError(t, err)
	_, err = table.CorrespondenceFromMatrix(m)
	assert.ErrorIs(t, err, table.ErrNonBinary)

	ok, err := table.NewMatrix(rows, cols, []float64{1, 1})
	require.NoError(t, err)
	c, err := table.CorrespondenceFromMatrix(ok, table.WithoutInjectiveCheck())
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.ColSum(0))
}

func TestCorrespondence_MatrixCopy(t *testing.T) {
	t.Parallel()

	c, err := table.NewCorrespondence(map[string][]string{"g": {"f1", "f2"}})
	require.NoError(t, err)

	m := c.Matrix()
	m.Raw().Set(0, 0, 42)

	assert.Equal(t, 1.0, c.AtPos(0, 0), "Matrix() must return a copy")
}
