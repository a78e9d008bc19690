// Package reflection implements structural reflection: reshaping a matrix
// or vector from a source sector taxonomy onto a target taxonomy by
// imposing the internal structure of a weight matrix through binary
// correspondence matrices.
//
// Structural reflection takes the structure of one economy and imputes it
// on another. Different statistical agencies publish input-output tables at
// different sector resolutions; the correspondence matrices say which
// target sectors each published sector may be spread across, and the
// weight matrix (usually a reference economy's table at the target
// resolution) says in what proportions.
//
// Algorithm outline (ReflectMatrix):
//
//  1. For every nonzero cell (i, j) of base, form the outer product of
//     row-correspondence column i and column-correspondence column j —
//     a 0/1 mask over the target taxonomy marking every eligible cell.
//  2. Multiply the mask cell-wise by the weights; sum the result.
//  3. Nonzero sum: spread base[i, j] across the masked cells in proportion
//     to weight (divided by the sum when normalizing, raw otherwise).
//  4. Zero sum: retry once with the fallback weights, if configured.
//  5. Still zero (or no fallback): drop the cell's value, warning unless
//     the source row/column is declared expected-to-drop.
//  6. Accumulate additively — a target cell may receive contributions from
//     many source cells.
//
// When normalizing, total mass is conserved up to floating-point tolerance
// except for source sectors with no correspondence target at all; the
// conservation check excludes those and logs (never raises) on a miss,
// because published source data is imperfect and multi-year batch runs
// must not stop on every anomaly. See DefaultConservationRTol.
//
// Complexity: O(nnz(base) · |support|) — sector counts are in the
// hundreds, so a call is at most a few hundred thousand flops.
package reflection
