package equipment_test

import (
	"math"
	"testing"

	"Plantek/internal/calc/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoiler_BareLowRange(t *testing.T) {
	res, err := equipment.Boiler(equipment.BoilerInput{
		VaporKgH:    10000,
		PressureBar: 70,
		BareOnly:    true,
	})
	require.NoError(t, err)

	// Q<20000 branch: int(106000 + 8.7*10000)
	assert.Equal(t, 193000, res.CostEUR)
	assert.Empty(t, res.Warnings)
}

func TestBoiler_InstalledAppliesFluidsFactors(t *testing.T) {
	bare, err := equipment.Boiler(equipment.BoilerInput{VaporKgH: 10000, PressureBar: 70, BareOnly: true})
	require.NoError(t, err)
	installed, err := equipment.Boiler(equipment.BoilerInput{VaporKgH: 10000, PressureBar: 70})
	require.NoError(t, err)

	// (1+fp)*fm + (fer+fel+fi+fc+fs+fl) = 1.8 + 1.4 = 3.2 for Fluids, fm=1
	assert.Equal(t, int(float64(bare.CostEUR)*3.2), installed.CostEUR)
}

func TestBoiler_BranchBoundaries(t *testing.T) {
	lowFormula := func(q float64) int { return int(106000 + 8.7*q) }
	highFormula := func(q float64) int { return int(110000 + 4.5*math.Pow(q, 0.9)) }

	// At Q=20000 the mid range is entered; mid-pressure keeps the linear
	// formula, low and high pressures switch to the power law.
	for _, tc := range []struct {
		name     string
		q, p     float64
		expected int
	}{
		{"mid pressure stays linear at 20000", 20000, 20, lowFormula(20000)},
		{"low pressure switches at 20000", 20000, 12, highFormula(20000)},
		{"high pressure switches at 20000", 20000, 40, highFormula(20000)},
		{"all pressures power law at 200000", 200000, 20, highFormula(200000)},
		{"just below 200000 mid pressure", 199999, 20, lowFormula(199999)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := equipment.Boiler(equipment.BoilerInput{VaporKgH: tc.q, PressureBar: tc.p, BareOnly: true})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res.CostEUR)
		})
	}
}

func TestBoiler_OutOfBoundsWarnsButComputes(t *testing.T) {
	res, err := equipment.Boiler(equipment.BoilerInput{VaporKgH: 1000, PressureBar: 80, BareOnly: true})
	require.NoError(t, err)

	assert.Len(t, res.Warnings, 2)
	assert.Equal(t, int(106000+8.7*1000), res.CostEUR)
}

func TestBoiler_RejectsNonPositiveInputs(t *testing.T) {
	_, err := equipment.Boiler(equipment.BoilerInput{VaporKgH: -10, PressureBar: 20})
	assert.Error(t, err)

	_, err = equipment.Boiler(equipment.BoilerInput{VaporKgH: 10000, PressureBar: 20, MaterialFactor: -1})
	assert.Error(t, err)
}

func TestPump_BareAndBounds(t *testing.T) {
	res, err := equipment.Pump(equipment.PumpInput{FlowLS: 2.84, BareOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int(6900+206*math.Pow(2.84, 0.9)), res.CostEUR)
	assert.Empty(t, res.Warnings)

	res, err = equipment.Pump(equipment.PumpInput{FlowLS: 200, BareOnly: true})
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)
	assert.Positive(t, res.CostEUR)
}

func TestSteamTurbine_Bare(t *testing.T) {
	res, err := equipment.SteamTurbine(equipment.TurbineInput{PowerKW: 1500, BareOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int(-12000+1630*math.Pow(1500, 0.75)), res.CostEUR)
}

func TestWilliam_ScalesReferenceCost(t *testing.T) {
	cost, err := equipment.William(400000, 10000, 15000, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 400000*math.Pow(10000.0/15000.0, 0.8), cost, 1e-9)

	_, err = equipment.William(400000, 10000, 0, 0.8)
	assert.Error(t, err)
}

func TestCapitalFactor_Lookup(t *testing.T) {
	assert.Equal(t, 0.8, equipment.CapitalFactor(equipment.FactorPiping, equipment.PhaseFluids))
	assert.Equal(t, 0.25, equipment.CapitalFactor(equipment.FactorDesign, equipment.PhaseFluidsSolids))
	assert.Equal(t, 0.05, equipment.CapitalFactor(equipment.FactorLagging, equipment.PhaseSolids))
	assert.Zero(t, equipment.CapitalFactor("unknown", equipment.PhaseFluids))
}
