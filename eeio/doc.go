// SPDX-License-Identifier: MIT

// Package eeio provides the input-output accounting formulas of an
// environmentally-extended input-output (EEIO) model.
//
// Axis conventions, used consistently across the package:
//
//	V (industry × commodity) — make table: industries supplying commodities
//	U (commodity × industry) — use table: industries consuming commodities
//	g (industry)             — industry output, row sums of V
//	q (commodity)            — commodity output, column sums of V
//	A (commodity × commodity) — direct requirements
//	L (commodity × commodity) — total requirements, (I−A)⁻¹
//
// Every function is pure and label-preserving: outputs carry the taxonomies
// of their inputs, and inputs are never mutated.
package eeio
