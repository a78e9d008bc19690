// SPDX-License-Identifier: MIT

package disagg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornerstone-data/bedrock/disagg"
	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

var (
	splitFine   = taxonomy.MustNew("x", "y")
	splitCoarse = taxonomy.MustNew("g")
)

func newSplitCorresp(t *testing.T) *table.Correspondence {
	t.Helper()

	c, err := table.NewCorrespondence(map[string][]string{
		"g": {"x", "y"},
	}, table.WithDomain(splitCoarse), table.WithRange(splitFine))
	require.NoError(t, err)

	return c
}

func TestSplitByAggRatio_BroadcastsCoarseRatio(t *testing.T) {
	t.Parallel()

	c := newSplitCorresp(t)
	base, err := table.NewVectorFromMap(splitFine, map[string]float64{"x": 10, "y": 20})
	require.NoError(t, err)
	ratio, err := table.NewVectorFromMap(splitCoarse, map[string]float64{"g": 0.3})
	require.NoError(t, err)

	partA, partB, err := disagg.SplitByAggRatio(base, ratio, c)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, mustAt(t, partA, "x"), 1e-12)
	assert.InDelta(t, 6.0, mustAt(t, partA, "y"), 1e-12)
	assert.InDelta(t, 7.0, mustAt(t, partB, "x"), 1e-12)
	assert.InDelta(t, 14.0, mustAt(t, partB, "y"), 1e-12)
}

func TestSplitByAggRatio_PartsAreComplementary(t *testing.T) {
	t.Parallel()

	fine := taxonomy.MustNew("x", "y", "z")
	coarse := taxonomy.MustNew("g", "h")
	c, err := table.NewCorrespondence(map[string][]string{
		"g": {"x", "y"},
		"h": {"z"},
	}, table.WithDomain(coarse), table.WithRange(fine))
	require.NoError(t, err)

	base, err := table.NewVectorFromMap(fine, map[string]float64{"x": 1.5, "y": 0, "z": 7})
	require.NoError(t, err)
	ratio, err := table.NewVectorFromMap(coarse, map[string]float64{"g": 0.25, "h": 1})
	require.NoError(t, err)

	partA, partB, err := disagg.SplitByAggRatio(base, ratio, c)
	require.NoError(t, err)

	// Recombination is exact by construction, not merely within tolerance.
	var i int
	for i = 0; i < fine.Len(); i++ {
		assert.Equal(t, base.AtPos(i), partA.AtPos(i)+partB.AtPos(i), fine.Code(i))
	}
	// h's ratio of 1 routes z entirely into part A.
	assert.InDelta(t, 7.0, mustAt(t, partA, "z"), 1e-12)
	assert.InDelta(t, 0.0, mustAt(t, partB, "z"), 1e-12)
}

func TestSplitByAggRatio_RejectsRatioOutsideUnitInterval(t *testing.T) {
	t.Parallel()

	c := newSplitCorresp(t)
	base, err := table.NewVectorFromMap(splitFine, map[string]float64{"x": 10, "y": 20})
	require.NoError(t, err)

	for _, bad := range []float64{-0.1, 1.2} {
		ratio, err := table.NewVectorFromMap(splitCoarse, map[string]float64{"g": bad})
		require.NoError(t, err)

		_, _, err = disagg.SplitByAggRatio(base, ratio, c)
		require.ErrorIs(t, err, disagg.ErrRatioRange)
	}
}

func TestSplitByAggRatio_RejectsMisalignedIndexes(t *testing.T) {
	t.Parallel()

	c := newSplitCorresp(t)
	base, err := table.NewVectorFromMap(splitCoarse, map[string]float64{"g": 10})
	require.NoError(t, err)
	ratio, err := table.NewVectorFromMap(splitCoarse, map[string]float64{"g": 0.5})
	require.NoError(t, err)

	_, _, err = disagg.SplitByAggRatio(base, ratio, c)
	require.ErrorIs(t, err, table.ErrIndexMismatch)
}
