// Package taxonomy defines sector classifications and the index machinery
// shared by every allocation routine.
//
// The taxonomy package provides:
//
//   - Taxonomy: a fixed, ordered list of unique sector codes (e.g. the
//     ~400-sector CEDA list, a BEA summary list, a gas inventory's source
//     categories). All labeled tables in this module are indexed by one.
//   - Mapping helpers (Traverse, Reverse) for composing and inverting
//     code-to-code mappings between classifications.
//   - ParseIndexWithAggregates: turns a flat report index whose "section
//     header" rows are followed by their detail rows into an ordered
//     two-level (aggregate, member) index.
//
// Taxonomies are immutable after construction and cheap to compare; the
// rest of the module relies on order-sensitive Taxonomy.Equal checks to
// turn misaligned inputs into hard errors instead of silent miscomputation.
package taxonomy
