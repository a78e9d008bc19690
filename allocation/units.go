// SPDX-License-Identifier: MIT

package allocation

// Mass conversion factors. Inventory reports publish in megatonnes
// (million metric tons) or kilotonnes; the model works in kilograms.
const (
	KilotonneToKg    = 1e6
	KgToKilotonne    = 1e-6
	MegatonneToTonne = 1e6
	TonneToMegatonne = 1e-6
	MegatonneToKg    = 1e9
	KgToMegatonne    = 1e-9
	TonneToKg        = 1e3
	KilotonneToTonne = 1e3
)

// Currency conversion factors. Economic tables publish in millions or
// billions of currency units.
const (
	MillionCurrencyToCurrency = 1e6
	BillionCurrencyToCurrency = 1e9
)
