// SPDX-License-Identifier: MIT

package allocation

import (
	"fmt"
	"slices"

	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

// Proportional spreads an emissions quantity over the named sectors in
// proportion to their weights, then projects the result onto target with
// every unnamed sector at zero. The weights are typically a column of an
// economic table: spending on the emitting activity.
//
// Every named sector must exist in the weight vector's index
// (table.ErrUnknownSector); the selected weights must not sum to zero
// (ErrZeroWeights).
func Proportional(emissions float64, weights *table.Vector, sectors []string, target *taxonomy.Taxonomy) (*table.Vector, error) {
	if weights == nil {
		return nil, fmt.Errorf("Proportional: %w", table.ErrNilTable)
	}

	selected := make(map[string]float64, len(sectors))
	var total float64
	for _, s := range sectors {
		w, err := weights.At(s)
		if err != nil {
			return nil, fmt.Errorf("Proportional: %w", err)
		}
		selected[s] = w
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("Proportional: sectors %v: %w", sectors, ErrZeroWeights)
	}

	for s, w := range selected {
		selected[s] = emissions * w / total
	}

	sectorTax, err := taxonomy.New(sortedKeys(selected))
	if err != nil {
		return nil, fmt.Errorf("Proportional: %w", err)
	}
	v, err := table.NewVectorFromMap(sectorTax, selected)
	if err != nil {
		return nil, fmt.Errorf("Proportional: %w", err)
	}

	return v.Reindex(target, 0)
}

// SingleSector assigns an emissions quantity wholly to one sector of the
// target taxonomy.
func SingleSector(emissions float64, sector string, target *taxonomy.Taxonomy) (*table.Vector, error) {
	if target == nil {
		return nil, fmt.Errorf("SingleSector: %w", table.ErrNilTaxonomy)
	}
	if !target.Contains(sector) {
		return nil, fmt.Errorf("SingleSector: %q: %w", sector, table.ErrUnknownSector)
	}

	return table.NewVectorFromMap(target, map[string]float64{sector: emissions})
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
