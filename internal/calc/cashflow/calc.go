package cashflow

import "fmt"

const (
	// DefaultHorizonYears is the length of the projected cash-flow table,
	// year 0 being the construction year.
	DefaultHorizonYears = 20

	// Year-over-year escalation applied from year 1 onward.
	SalesEscalation  = 1.03
	WaterEscalation  = 1.03
	SalaryEscalation = 1.02

	// TaxRate is applied to positive earnings before tax.
	TaxRate = 0.30
)

// Assumptions gathers everything the assembler needs for one projection.
// Schedules use the signed convention (outflows negative) and start at
// year 1; year 0 carries only the equity share of the investment.
type Assumptions struct {
	HorizonYears   int     `json:"horizon_years"`
	Capex          float64 `json:"capex"`
	EquityFraction float64 `json:"equity_fraction"`

	AnnualSales    float64 `json:"annual_sales"`
	AnnualWater    float64 `json:"annual_water"`
	AnnualSalaries float64 `json:"annual_salaries"`

	LoanInterest  []float64 `json:"loan_interest"`
	LoanPrincipal []float64 `json:"loan_principal"`
	Depreciation  []float64 `json:"depreciation"`
}

// Ledger is the assembled year-indexed cash-flow table. All rows have the
// same length (the projection horizon) and are read-only after assembly.
type Ledger struct {
	Years         int       `json:"years"`
	Investment    []float64 `json:"investment"`
	Sales         []float64 `json:"sales"`
	Depreciation  []float64 `json:"depreciation"`
	LoanPrincipal []float64 `json:"loan_principal"`
	LoanInterest  []float64 `json:"loan_interest"`
	Salaries      []float64 `json:"salaries"`
	Water         []float64 `json:"water"`
	EBT           []float64 `json:"ebt"`
	Taxes         []float64 `json:"taxes"`
	EAT           []float64 `json:"eat"`
	CashFlow      []float64 `json:"cash_flow"`
	Cumulative    []float64 `json:"cumulative_cash_flow"`
}

// Row pairs a ledger row with its report label.
type Row struct {
	Name   string
	Values []float64
}

// Rows returns the ledger rows in reporting order.
func (l Ledger) Rows() []Row {
	return []Row{
		{"Investment", l.Investment},
		{"Sales", l.Sales},
		{"Depreciation", l.Depreciation},
		{"Loan principal", l.LoanPrincipal},
		{"Loan interest", l.LoanInterest},
		{"Salaries", l.Salaries},
		{"Water", l.Water},
		{"EBT", l.EBT},
		{"Taxes", l.Taxes},
		{"EAT", l.EAT},
		{"Cash Flow", l.CashFlow},
		{"Cumulative Cash Flow", l.Cumulative},
	}
}

// Assemble builds the full ledger in one pass. It validates everything up
// front so a bad input never yields a partially filled table.
func Assemble(in Assumptions) (Ledger, error) {
	years := in.HorizonYears
	if years == 0 {
		years = DefaultHorizonYears
	}
	if years < 2 {
		return Ledger{}, fmt.Errorf("projection horizon must span at least two years")
	}
	if in.Capex <= 0 {
		return Ledger{}, fmt.Errorf("capex must be positive")
	}
	if in.EquityFraction < 0 || in.EquityFraction > 1 {
		return Ledger{}, fmt.Errorf("equity fraction must be a fraction of unity")
	}
	if in.AnnualSales < 0 || in.AnnualWater < 0 || in.AnnualSalaries < 0 {
		return Ledger{}, fmt.Errorf("operating assumptions must be non-negative")
	}
	for _, s := range [][]float64{in.LoanInterest, in.LoanPrincipal, in.Depreciation} {
		if len(s) > years-1 {
			return Ledger{}, fmt.Errorf("schedule of %d years does not fit a %d year horizon", len(s), years)
		}
	}

	l := Ledger{
		Years:         years,
		Investment:    make([]float64, years),
		Sales:         make([]float64, years),
		Depreciation:  padFromYearOne(in.Depreciation, years),
		LoanPrincipal: padFromYearOne(in.LoanPrincipal, years),
		LoanInterest:  padFromYearOne(in.LoanInterest, years),
		Salaries:      make([]float64, years),
		Water:         make([]float64, years),
		EBT:           make([]float64, years),
		Taxes:         make([]float64, years),
		EAT:           make([]float64, years),
		CashFlow:      make([]float64, years),
		Cumulative:    make([]float64, years),
	}

	// Year 0 is the construction year: only the equity draw, no operations.
	l.Investment[0] = -in.Capex * in.EquityFraction

	for i := 1; i < years; i++ {
		if i == 1 {
			l.Sales[i] = in.AnnualSales
			l.Water[i] = -in.AnnualWater
			l.Salaries[i] = -in.AnnualSalaries
			continue
		}
		l.Sales[i] = l.Sales[i-1] * SalesEscalation
		l.Water[i] = l.Water[i-1] * WaterEscalation
		l.Salaries[i] = l.Salaries[i-1] * SalaryEscalation
	}

	cumulative := 0.0
	for i := 0; i < years; i++ {
		l.EBT[i] = l.Investment[i] + l.Depreciation[i] + l.LoanInterest[i] +
			l.Sales[i] + l.Water[i] + l.Salaries[i]

		// Tax is only ever a charge: positive EBT is taxed, losses are
		// never converted into a credit.
		taxes := -TaxRate * l.EBT[i]
		if taxes > 0 {
			taxes = 0
		}
		l.Taxes[i] = taxes

		l.EAT[i] = l.EBT[i] - l.Taxes[i]

		// Depreciation is a non-cash charge, added back; principal
		// repayment is cash out but not an expense.
		l.CashFlow[i] = l.EAT[i] - l.Depreciation[i] + l.LoanPrincipal[i]

		cumulative += l.CashFlow[i]
		l.Cumulative[i] = cumulative
	}

	return l, nil
}

// padFromYearOne places a year-1-based schedule into a zero-filled
// horizon-length row.
func padFromYearOne(schedule []float64, years int) []float64 {
	row := make([]float64, years)
	copy(row[1:], schedule)
	return row
}
