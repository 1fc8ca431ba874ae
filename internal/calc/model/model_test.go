package model_test

import (
	"math"
	"testing"

	"Plantek/internal/calc/metrics"
	"Plantek/internal/calc/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CaseStudyDefaults(t *testing.T) {
	out, err := model.Run(model.Input{})
	require.NoError(t, err)

	// Installed equipment costs for the default steam cycle.
	assert.Equal(t, 617600, out.Capex.Boiler)
	assert.InDelta(t, 400000*math.Pow(10000.0/15000.0, 0.8), out.Capex.Condenser, 1e-6)
	assert.Positive(t, out.Capex.Turbine)
	assert.Positive(t, out.Capex.Pump)
	assert.InDelta(t,
		float64(out.Capex.Boiler)+float64(out.Capex.Turbine)+out.Capex.Condenser+float64(out.Capex.Pump),
		out.Capex.Total, 1e-6)

	require.Equal(t, 20, out.Ledger.Years)
	require.Len(t, out.Ledger.CashFlow, 20)
	require.Len(t, out.DCFTable, 20)

	// Year 0 draws the 40% equity share of capex.
	assert.InDelta(t, -0.4*out.Capex.Total, out.Ledger.Investment[0], 1e-6)

	// First operating year revenue and costs.
	assert.InDelta(t, 1500*0.05*8760*0.9, out.Ledger.Sales[1], 1e-6)
	assert.InDelta(t, -1.29*10*8760*0.9, out.Ledger.Water[1], 1e-6)
	assert.InDelta(t, -4*3*30000, out.Ledger.Salaries[1], 1e-6)

	assert.Empty(t, out.Warnings)
}

func TestRun_MetricsAreConsistentWithLedger(t *testing.T) {
	out, err := model.Run(model.Input{})
	require.NoError(t, err)

	assert.InDelta(t, metrics.NPV(0.053, out.Ledger.CashFlow), out.NPV, 1e-6)
	assert.InDelta(t, 0, metrics.NPV(out.IRR, out.Ledger.CashFlow), 1e-4)
	assert.Equal(t, metrics.Payback(out.Ledger.CashFlow), out.PaybackYear)
	assert.Greater(t, out.PaybackYear, 1)
}

func TestRun_CumulativeRecoversOnceCashFlowTurns(t *testing.T) {
	out, err := model.Run(model.Input{})
	require.NoError(t, err)

	turned := false
	for i := 1; i < out.Ledger.Years; i++ {
		if out.Ledger.CashFlow[i] > 0 {
			turned = true
		}
		if turned {
			assert.GreaterOrEqual(t, out.Ledger.Cumulative[i], out.Ledger.Cumulative[i-1]-1e-9, "year %d", i)
		}
	}
	assert.True(t, turned)
}

func TestRun_OverridesPropagate(t *testing.T) {
	out, err := model.Run(model.Input{
		TurbinePowerKW: 2000,
		HorizonYears:   25,
		DiscountRate:   0.08,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, out.Ledger.Years)
	assert.InDelta(t, 2000*0.05*8760*0.9, out.Ledger.Sales[1], 1e-6)
	assert.InDelta(t, metrics.NPV(0.08, out.Ledger.CashFlow), out.NPV, 1e-6)
}

func TestRun_OutOfRangeEquipmentStillRunsWithWarnings(t *testing.T) {
	out, err := model.Run(model.Input{BoilerVaporKgH: 1000})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Warnings)
}

func TestRun_InvalidFinancingAborts(t *testing.T) {
	_, err := model.Run(model.Input{LoanRate: 1.5})
	assert.Error(t, err)

	_, err = model.Run(model.Input{LoanYears: 1})
	assert.Error(t, err)
}
