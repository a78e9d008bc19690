// SPDX-License-Identifier: MIT

package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornerstone-data/bedrock/taxonomy"
)

func TestParseIndexWithAggregates_Concrete(t *testing.T) {
	t.Parallel()

	ix, err := taxonomy.ParseIndexWithAggregates(
		[]string{"Total", "A", "B", "Other", "C"},
		[]string{"Total", "Other"},
	)
	require.NoError(t, err)

	want := taxonomy.AggIndex{
		{Aggregate: "Total", Member: taxonomy.Total},
		{Aggregate: "Total", Member: "A"},
		{Aggregate: "Total", Member: "B"},
		{Aggregate: "Other", Member: taxonomy.Total},
		{Aggregate: "Other", Member: "C"},
	}
	assert.Equal(t, want, ix)
}

func TestParseIndexWithAggregates_LeadingDetail(t *testing.T) {
	t.Parallel()

	_, err := taxonomy.ParseIndexWithAggregates(
		[]string{"A", "Total"},
		[]string{"Total"},
	)
	assert.ErrorIs(t, err, taxonomy.ErrLeadingDetail)

	_, err = taxonomy.ParseIndexWithAggregates(nil, []string{"Total"})
	assert.ErrorIs(t, err, taxonomy.ErrLeadingDetail)
}

func TestParseIndexWithAggregates_DuplicatePair(t *testing.T) {
	t.Parallel()

	// The aggregate repeats with the same detail row: both the repeated
	// ("Total", "TOTAL") header and the repeated ("Total", "A") detail are
	// double counts; the first duplicate encountered must abort the parse.
	_, err := taxonomy.ParseIndexWithAggregates(
		[]string{"Total", "A", "Total", "A"},
		[]string{"Total"},
	)
	assert.ErrorIs(t, err, taxonomy.ErrDuplicatePair)
}

func TestParseIndexWithAggregates_AggregateOnlySections(t *testing.T) {
	t.Parallel()

	// Back-to-back headers are legal: a section may carry only its subtotal.
	ix, err := taxonomy.ParseIndexWithAggregates(
		[]string{"CO2", "CH4"},
		[]string{"CO2", "CH4"},
	)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.AggIndex{
		{Aggregate: "CO2", Member: taxonomy.Total},
		{Aggregate: "CH4", Member: taxonomy.Total},
	}, ix)
}

func TestAggIndex_Position(t *testing.T) {
	t.Parallel()

	ix, err := taxonomy.ParseIndexWithAggregates(
		[]string{"CO2", "Urea Fertilization", "CH4", "Landfills"},
		[]string{"CO2", "CH4"},
	)
	require.NoError(t, err)

	i, ok := ix.Position("CO2", "Urea Fertilization")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = ix.Position("CH4", taxonomy.Total)
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = ix.Position("N2O", taxonomy.Total)
	assert.False(t, ok)
}
