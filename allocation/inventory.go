// SPDX-License-Identifier: MIT

package allocation

import (
	"fmt"

	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

// Inventory is a national emissions inventory: one quantity per
// (gas, source-category) row, parsed from a report whose label column
// interleaves gas header rows with their category detail rows.
type Inventory struct {
	index  taxonomy.AggIndex
	values []float64
}

// NewInventory parses a report's label column into a two-level index and
// binds the value column to it. gases names the header rows; each header
// row carries the gas subtotal and is filed under (gas, taxonomy.Total).
//
// Errors: ErrLengthMismatch, table.ErrNaNInf, and the taxonomy package's
// parse errors (ErrLeadingDetail, ErrDuplicatePair).
func NewInventory(labels, gases []string, values []float64) (*Inventory, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("NewInventory: %d labels, %d values: %w",
			len(labels), len(values), ErrLengthMismatch)
	}
	if err := table.ValidateFinite(values); err != nil {
		return nil, fmt.Errorf("NewInventory: %w", err)
	}

	ix, err := taxonomy.ParseIndexWithAggregates(labels, gases)
	if err != nil {
		return nil, fmt.Errorf("NewInventory: %w", err)
	}

	vals := make([]float64, len(values))
	copy(vals, values)

	return &Inventory{index: ix, values: vals}, nil
}

// At returns the quantity filed under (gas, category).
func (inv *Inventory) At(gas, category string) (float64, error) {
	i, ok := inv.index.Position(gas, category)
	if !ok {
		return 0, fmt.Errorf("Inventory.At: (%q, %q): %w", gas, category, ErrMissingEntry)
	}

	return inv.values[i], nil
}

// Total returns the gas's subtotal, i.e. its header row's quantity.
func (inv *Inventory) Total(gas string) (float64, error) {
	return inv.At(gas, taxonomy.Total)
}

// Index returns the parsed (gas, category) index, in report order.
func (inv *Inventory) Index() taxonomy.AggIndex {
	out := make(taxonomy.AggIndex, len(inv.index))
	copy(out, inv.index)

	return out
}
