// Package table provides taxonomy-labeled vectors and matrices, plus the
// binary correspondence matrices that relate one taxonomy to another.
//
// The table package provides:
//
//   - Vector: a real-valued series indexed by a Taxonomy, for economic
//     weights (possibly negative) and physical quantities (acres, tonnes).
//   - Matrix: a real-valued table indexed by a row and a column Taxonomy,
//     for use/make tables and reshaped emissions outputs.
//   - Correspondence: a strictly binary target×source matrix marking which
//     target buckets a source bucket may contribute to, with the structural
//     checks (injective / surjective / complete) applied at build time.
//
// Storage is dense (gonum mat.Dense / mat.VecDense); taxonomies are in the
// hundreds, so O(n²) memory is acceptable and keeps kernels auditable.
//
// All values are immutable by convention: constructors copy their inputs,
// operations return freshly constructed results, and only Raw exposes the
// backing storage (for read-only kernel access by sibling packages).
// Label alignment is order-sensitive and checked explicitly — the same
// codes in a different order is a hard ErrIndexMismatch, never a silent
// positional reinterpretation.
package table
