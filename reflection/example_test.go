// SPDX-License-Identifier: MIT

package reflection_test

import (
	"fmt"

	"github.com/cornerstone-data/bedrock/reflection"
	"github.com/cornerstone-data/bedrock/table"
	"github.com/cornerstone-data/bedrock/taxonomy"
)

// ExampleReflectVector disaggregates a two-sector emissions vector onto a
// three-sector target taxonomy, imposing the target economy's weights.
//
// Scenario:
//
//	source: {agriculture, energy}
//	target: {crops, livestock, power}
//	agriculture fans out to {crops, livestock}; energy maps to {power}.
//
// The 30 units reported for agriculture are split 1:3 between crops and
// livestock, following the weight vector; energy's 8 units pass through.
func ExampleReflectVector() {
	source := taxonomy.MustNew("agriculture", "energy")
	target := taxonomy.MustNew("crops", "livestock", "power")

	corresp, err := table.NewCorrespondence(map[string][]string{
		"agriculture": {"crops", "livestock"},
		"energy":      {"power"},
	}, table.WithDomain(source), table.WithRange(target))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	base, _ := table.NewVector(source, []float64{30, 8})
	weights, _ := table.NewVector(target, []float64{1, 3, 5})

	out, err := reflection.ReflectVector(corresp, base, weights)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, code := range target.Codes() {
		v, _ := out.At(code)
		fmt.Printf("%s=%.1f\n", code, v)
	}
	// Output:
	// crops=7.5
	// livestock=22.5
	// power=8.0
}
