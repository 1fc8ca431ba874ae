package financing_test

import (
	"testing"

	"Plantek/internal/calc/financing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoan_PrincipalSeriesSumsToPrincipal(t *testing.T) {
	sched, err := financing.Loan(financing.LoanInput{Principal: 1_000_000, Rate: 0.04, Years: 10})
	require.NoError(t, err)
	require.Len(t, sched.Principal, 10)
	require.Len(t, sched.Interest, 10)

	var totalPrincipal float64
	for _, p := range sched.Principal {
		totalPrincipal += p
		assert.Negative(t, p)
	}
	assert.InDelta(t, -1_000_000, totalPrincipal, 1e-6)
}

func TestLoan_EachPeriodSumsToPayment(t *testing.T) {
	sched, err := financing.Loan(financing.LoanInput{Principal: 250_000, Rate: 0.05, Years: 7})
	require.NoError(t, err)

	assert.Negative(t, sched.Payment)
	for i := range sched.Interest {
		assert.InDelta(t, sched.Payment, sched.Interest[i]+sched.Principal[i], 1e-9)
	}
	// Interest burden declines as the balance amortizes.
	for i := 1; i < len(sched.Interest); i++ {
		assert.Greater(t, sched.Interest[i], sched.Interest[i-1])
	}
}

func TestLoan_ZeroRateSplitsEvenly(t *testing.T) {
	sched, err := financing.Loan(financing.LoanInput{Principal: 1000, Rate: 0, Years: 4})
	require.NoError(t, err)

	assert.InDelta(t, -250, sched.Payment, 1e-9)
	for i := range sched.Interest {
		assert.InDelta(t, 0, sched.Interest[i], 1e-9)
		assert.InDelta(t, -250, sched.Principal[i], 1e-9)
	}
}

func TestLoan_RejectsInvalidInputs(t *testing.T) {
	_, err := financing.Loan(financing.LoanInput{Principal: -1, Rate: 0.04, Years: 10})
	assert.Error(t, err)
	_, err = financing.Loan(financing.LoanInput{Principal: 100, Rate: 1.5, Years: 10})
	assert.Error(t, err)
	_, err = financing.Loan(financing.LoanInput{Principal: 100, Rate: 0.04, Years: 1})
	assert.Error(t, err)
}

func TestDepreciation_SevenPercentOverHundredThousand(t *testing.T) {
	sched, err := financing.Depreciation(financing.DepreciationInput{Rate: 0.07, Capex: 100_000})
	require.NoError(t, err)

	// 14 full-rate years then the 2% remainder.
	require.Len(t, sched, 15)
	for i := 0; i < 14; i++ {
		assert.InDelta(t, -7000, sched[i], 1e-6)
	}
	assert.InDelta(t, -2000, sched[14], 1e-6)

	var total float64
	for _, d := range sched {
		total += d
	}
	assert.InDelta(t, -100_000, total, 1e-6)
}

func TestDepreciation_SumEqualsBaseWithResidual(t *testing.T) {
	sched, err := financing.Depreciation(financing.DepreciationInput{Rate: 0.3, Capex: 50_000, Residual: 5_000})
	require.NoError(t, err)

	var total float64
	for _, d := range sched {
		total += d
		// No single year may exceed the depreciable base.
		assert.LessOrEqual(t, -d, 45_000.0+1e-9)
	}
	assert.InDelta(t, -45_000, total, 1e-6)
}

func TestDepreciation_NoYearExceedsRemainingBase(t *testing.T) {
	sched, err := financing.Depreciation(financing.DepreciationInput{Rate: 0.4, Capex: 10_000})
	require.NoError(t, err)

	remaining := 10_000.0
	for _, d := range sched {
		assert.LessOrEqual(t, -d, remaining+1e-9)
		remaining += d
	}
	assert.InDelta(t, 0, remaining, 1e-9)
}

func TestDepreciation_RejectsInvalidInputs(t *testing.T) {
	_, err := financing.Depreciation(financing.DepreciationInput{Rate: 1.2, Capex: 100})
	assert.Error(t, err)
	_, err = financing.Depreciation(financing.DepreciationInput{Rate: 0.1, Capex: -5})
	assert.Error(t, err)
	_, err = financing.Depreciation(financing.DepreciationInput{Rate: 0.1, Capex: 100, Residual: 200})
	assert.Error(t, err)
}
