package cashflow_test

import (
	"testing"

	"Plantek/internal/calc/cashflow"
	"Plantek/internal/calc/financing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssumptions(t *testing.T) cashflow.Assumptions {
	t.Helper()

	loan, err := financing.Loan(financing.LoanInput{Principal: 600_000, Rate: 0.04, Years: 10})
	require.NoError(t, err)
	dep, err := financing.Depreciation(financing.DepreciationInput{Rate: 0.07, Capex: 1_000_000})
	require.NoError(t, err)

	return cashflow.Assumptions{
		Capex:          1_000_000,
		EquityFraction: 0.4,
		AnnualSales:    500_000,
		AnnualWater:    90_000,
		AnnualSalaries: 360_000,
		LoanInterest:   loan.Interest,
		LoanPrincipal:  loan.Principal,
		Depreciation:   dep,
	}
}

func TestAssemble_YearZeroHoldsOnlyEquityDraw(t *testing.T) {
	l, err := cashflow.Assemble(testAssumptions(t))
	require.NoError(t, err)

	assert.Equal(t, cashflow.DefaultHorizonYears, l.Years)
	assert.InDelta(t, -400_000, l.Investment[0], 1e-9)
	assert.Zero(t, l.Sales[0])
	assert.Zero(t, l.Water[0])
	assert.Zero(t, l.Salaries[0])
	assert.Zero(t, l.Depreciation[0])
	assert.Zero(t, l.LoanInterest[0])
	assert.Zero(t, l.LoanPrincipal[0])
	for i := 1; i < l.Years; i++ {
		assert.Zero(t, l.Investment[i])
	}
}

func TestAssemble_EscalationFromYearOne(t *testing.T) {
	l, err := cashflow.Assemble(testAssumptions(t))
	require.NoError(t, err)

	assert.InDelta(t, 500_000, l.Sales[1], 1e-9)
	assert.InDelta(t, -90_000, l.Water[1], 1e-9)
	assert.InDelta(t, -360_000, l.Salaries[1], 1e-9)
	for i := 2; i < l.Years; i++ {
		assert.InDelta(t, l.Sales[i-1]*1.03, l.Sales[i], 1e-6)
		assert.InDelta(t, l.Water[i-1]*1.03, l.Water[i], 1e-6)
		assert.InDelta(t, l.Salaries[i-1]*1.02, l.Salaries[i], 1e-6)
	}
}

func TestAssemble_TaxesNeverPositive(t *testing.T) {
	l, err := cashflow.Assemble(testAssumptions(t))
	require.NoError(t, err)

	for i, tax := range l.Taxes {
		assert.LessOrEqual(t, tax, 0.0, "year %d", i)
		if l.EBT[i] > 0 {
			assert.InDelta(t, -0.3*l.EBT[i], tax, 1e-6, "year %d", i)
		} else {
			assert.Zero(t, tax, "year %d", i)
		}
	}
}

func TestAssemble_RowIdentities(t *testing.T) {
	l, err := cashflow.Assemble(testAssumptions(t))
	require.NoError(t, err)

	cumulative := 0.0
	for i := 0; i < l.Years; i++ {
		ebt := l.Investment[i] + l.Depreciation[i] + l.LoanInterest[i] +
			l.Sales[i] + l.Water[i] + l.Salaries[i]
		assert.InDelta(t, ebt, l.EBT[i], 1e-6)
		assert.InDelta(t, l.EBT[i]-l.Taxes[i], l.EAT[i], 1e-6)
		assert.InDelta(t, l.EAT[i]-l.Depreciation[i]+l.LoanPrincipal[i], l.CashFlow[i], 1e-6)

		cumulative += l.CashFlow[i]
		assert.InDelta(t, cumulative, l.Cumulative[i], 1e-6)
	}
}

func TestAssemble_CumulativeNonDecreasingOncePositive(t *testing.T) {
	l, err := cashflow.Assemble(testAssumptions(t))
	require.NoError(t, err)

	turned := false
	for i := 1; i < l.Years; i++ {
		if l.CashFlow[i] > 0 {
			turned = true
		}
		if turned {
			assert.GreaterOrEqual(t, l.Cumulative[i], l.Cumulative[i-1]-1e-9)
		}
	}
	assert.True(t, turned, "cash flow should turn positive within the horizon")
}

func TestAssemble_RejectsOversizedSchedules(t *testing.T) {
	in := testAssumptions(t)
	in.HorizonYears = 8 // depreciation runs 15 years

	_, err := cashflow.Assemble(in)
	assert.Error(t, err)
}

func TestAssemble_RejectsInvalidAssumptions(t *testing.T) {
	in := testAssumptions(t)
	in.Capex = 0
	_, err := cashflow.Assemble(in)
	assert.Error(t, err)

	in = testAssumptions(t)
	in.EquityFraction = 1.4
	_, err = cashflow.Assemble(in)
	assert.Error(t, err)

	in = testAssumptions(t)
	in.AnnualWater = -5
	_, err = cashflow.Assemble(in)
	assert.Error(t, err)
}

func TestLedger_RowsReportingOrder(t *testing.T) {
	l, err := cashflow.Assemble(testAssumptions(t))
	require.NoError(t, err)

	rows := l.Rows()
	require.Len(t, rows, 12)
	assert.Equal(t, "Investment", rows[0].Name)
	assert.Equal(t, "Cumulative Cash Flow", rows[11].Name)
	for _, row := range rows {
		assert.Len(t, row.Values, l.Years)
	}
}
