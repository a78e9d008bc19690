// Package bedrock is the numeric core of an emissions-allocation pipeline:
// labeled tables, taxonomy bookkeeping, and the reallocation kernels that
// move greenhouse-gas quantities between sector classifications.
//
// What lives where:
//
//	taxonomy/   — sector code lists, mappings between them, two-level report indices
//	table/      — labeled vectors, matrices and binary correspondence matrices (gonum-backed)
//	reflection/ — weighted reallocation of tables onto a new taxonomy, with fallback weights
//	disagg/     — strict partition disaggregation and complementary ratio splits
//	eeio/       — input-output accounting formulas (outputs, requirements, Leontief inverse)
//	allocation/ — inventory parsing and per-source allocation to economic sectors
//	cache/      — compute-once memoization shared by concurrent allocators
//
// Guarantees across the module:
//
//   - Every table carries its taxonomy; kernels reject misaligned inputs
//     with sentinel errors instead of reindexing silently.
//   - Quantities are conserved: disaggregation enforces conservation as a
//     hard postcondition, reflection checks it and warns through the
//     caller's slog.Logger.
//   - Inputs are never mutated; every operation returns fresh tables.
package bedrock
