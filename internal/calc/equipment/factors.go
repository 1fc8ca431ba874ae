package equipment

// Phase selects the column of the capital factor table.
type Phase string

const (
	PhaseFluids       Phase = "Fluids"
	PhaseFluidsSolids Phase = "Fluids-Solids"
	PhaseSolids       Phase = "Solids"
)

// Factor names follow the usual capital-cost estimation shorthand.
type Factor string

const (
	FactorErection        Factor = "fer"
	FactorPiping          Factor = "fp"
	FactorInstrumentation Factor = "fi"
	FactorElectrical      Factor = "fel"
	FactorCivil           Factor = "fc"
	FactorStructures      Factor = "fs"
	FactorLagging         Factor = "fl"
	FactorOffsites        Factor = "OS"
	FactorDesign          Factor = "D&E"
	FactorContingency     Factor = "X"
)

// capitalFactors is the fixed installation-overhead table (factor x phase).
// Initialized once, never mutated.
var capitalFactors = map[Factor]map[Phase]float64{
	FactorErection:        {PhaseFluids: 0.3, PhaseFluidsSolids: 0.5, PhaseSolids: 0.6},
	FactorPiping:          {PhaseFluids: 0.8, PhaseFluidsSolids: 0.6, PhaseSolids: 0.2},
	FactorInstrumentation: {PhaseFluids: 0.3, PhaseFluidsSolids: 0.3, PhaseSolids: 0.2},
	FactorElectrical:      {PhaseFluids: 0.2, PhaseFluidsSolids: 0.2, PhaseSolids: 0.15},
	FactorCivil:           {PhaseFluids: 0.3, PhaseFluidsSolids: 0.3, PhaseSolids: 0.2},
	FactorStructures:      {PhaseFluids: 0.2, PhaseFluidsSolids: 0.2, PhaseSolids: 0.1},
	FactorLagging:         {PhaseFluids: 0.1, PhaseFluidsSolids: 0.1, PhaseSolids: 0.05},
	FactorOffsites:        {PhaseFluids: 0.3, PhaseFluidsSolids: 0.4, PhaseSolids: 0.4},
	FactorDesign:          {PhaseFluids: 0.35, PhaseFluidsSolids: 0.25, PhaseSolids: 0.2},
	FactorContingency:     {PhaseFluids: 0.1, PhaseFluidsSolids: 0.1, PhaseSolids: 0.1},
}

// CapitalFactor returns the installation-overhead multiplier for a factor
// and process phase. Unknown pairs return 0.
func CapitalFactor(f Factor, p Phase) float64 {
	return capitalFactors[f][p]
}

// installedFactor is the overall bare-to-installed multiplier:
// (1 + fp)*fm + (fer + fel + fi + fc + fs + fl).
func installedFactor(fm float64, p Phase) float64 {
	return (1+CapitalFactor(FactorPiping, p))*fm +
		CapitalFactor(FactorErection, p) +
		CapitalFactor(FactorElectrical, p) +
		CapitalFactor(FactorInstrumentation, p) +
		CapitalFactor(FactorCivil, p) +
		CapitalFactor(FactorStructures, p) +
		CapitalFactor(FactorLagging, p)
}
