// SPDX-License-Identifier: MIT

package allocation

import (
	"fmt"

	"github.com/cornerstone-data/bedrock/cache"
	"github.com/cornerstone-data/bedrock/table"
)

// Loader produces an economic table. Loaders are typically expensive
// (parse a published workbook, hit a warehouse) and are invoked at most
// once per Tables.
type Loader func() (*table.Matrix, error)

// Tables is the shared table front for a batch of allocators: every
// allocator reads the same use and make tables, so the loads are memoized
// and concurrent allocators share a single load per table. A failed load
// is retried on the next call.
type Tables struct {
	loadUse  Loader
	loadMake Loader
	memo     cache.Memo[*table.Matrix]
}

// NewTables binds the two loaders. Either may be nil if no allocator in
// the batch needs that table; calling the corresponding getter then fails.
func NewTables(loadUse, loadMake Loader) *Tables {
	return &Tables{loadUse: loadUse, loadMake: loadMake}
}

// Use returns the use table, loading it on first call.
func (t *Tables) Use() (*table.Matrix, error) {
	return t.load("use", t.loadUse)
}

// Make returns the make table, loading it on first call.
func (t *Tables) Make() (*table.Matrix, error) {
	return t.load("make", t.loadMake)
}

func (t *Tables) load(key string, loader Loader) (*table.Matrix, error) {
	if loader == nil {
		return nil, fmt.Errorf("Tables: no %s loader bound: %w", key, table.ErrNilTable)
	}

	return t.memo.Do(key, loader)
}
