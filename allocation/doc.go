// SPDX-License-Identifier: MIT

// Package allocation turns economy-wide emissions totals into per-sector
// emission vectors.
//
// An Inventory holds a national inventory report under a two-level
// (gas, source-category) index. Each source category is then allocated to
// economic sectors either proportionally to a weight vector (Proportional)
// or by assignment to a single sector (SingleSector). Tables gives
// concurrent allocators a shared, compute-once view of the underlying
// economic tables.
package allocation
