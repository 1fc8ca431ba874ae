package model

import (
	"fmt"

	"Plantek/internal/calc/cashflow"
	"Plantek/internal/calc/equipment"
	"Plantek/internal/calc/financing"
	"Plantek/internal/calc/metrics"
)

// Case-study defaults: a small steam cycle selling 1500 kW of power.
const (
	defaultBoilerVaporKgH    = 10000
	defaultBoilerPressureBar = 70
	defaultTurbinePowerKW    = 1500
	defaultPumpFlowLS        = 2.84

	// Condenser cost is scaled from a known reference unit.
	defaultCondenserRefCost     = 400000
	defaultCondenserRefCapacity = 15000
	defaultCondenserCapacity    = 10000
	defaultCondenserExponent    = 0.8

	defaultCapacityFactor      = 0.9
	defaultHoursPerYear        = 8760
	defaultElectricityPriceKWh = 0.05
	defaultWaterPriceTon       = 1.29
	defaultWaterFlowTonH       = 10
	defaultShifts              = 4
	defaultOperatorsPerShift   = 3
	defaultOperatorSalary      = 30000

	defaultLoanFraction     = 0.6
	defaultLoanRate         = 0.04
	defaultLoanYears        = 10
	defaultDepreciationRate = 0.07
	defaultDiscountRate     = 0.053
)

// Input overrides the case-study assumptions; zero fields fall back to
// the defaults above.
type Input struct {
	BoilerVaporKgH    float64 `json:"boiler_vapor_kg_h"`
	BoilerPressureBar float64 `json:"boiler_pressure_bar"`
	TurbinePowerKW    float64 `json:"turbine_power_kw"`
	PumpFlowLS        float64 `json:"pump_flow_l_s"`

	CondenserRefCost     float64 `json:"condenser_ref_cost"`
	CondenserRefCapacity float64 `json:"condenser_ref_capacity"`
	CondenserCapacity    float64 `json:"condenser_capacity"`
	CondenserExponent    float64 `json:"condenser_exponent"`

	CapacityFactor      float64 `json:"capacity_factor"`
	ElectricityPriceKWh float64 `json:"electricity_price_kwh"`
	WaterPriceTon       float64 `json:"water_price_ton"`
	WaterFlowTonH       float64 `json:"water_flow_ton_h"`
	Shifts              int     `json:"shifts"`
	OperatorsPerShift   int     `json:"operators_per_shift"`
	OperatorSalary      float64 `json:"operator_salary"`

	LoanFraction     float64 `json:"loan_fraction"`
	LoanRate         float64 `json:"loan_rate"`
	LoanYears        int     `json:"loan_years"`
	DepreciationRate float64 `json:"depreciation_rate"`
	ResidualValue    float64 `json:"residual_value"`

	HorizonYears int     `json:"horizon_years"`
	DiscountRate float64 `json:"discount_rate"`
}

// CapexBreakdown itemizes the installed equipment costs.
type CapexBreakdown struct {
	Boiler    int     `json:"boiler"`
	Turbine   int     `json:"turbine"`
	Condenser float64 `json:"condenser"`
	Pump      int     `json:"pump"`
	Total     float64 `json:"total"`
}

// Output is the full feasibility result handed to reporting consumers.
type Output struct {
	Capex       CapexBreakdown  `json:"capex"`
	Ledger      cashflow.Ledger `json:"ledger"`
	NPV         float64         `json:"npv"`
	IRR         float64         `json:"irr"`
	PaybackYear int             `json:"payback_year"`
	DCFTable    [][]float64     `json:"dcf_table"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// Run executes the whole feasibility study: equipment costing, loan and
// depreciation schedules, the 20-year cash-flow ledger, and the
// investment metrics on the resulting cash-flow sequence.
func Run(in Input) (Output, error) {
	applyDefaults(&in)

	boiler, err := equipment.Boiler(equipment.BoilerInput{
		VaporKgH:    in.BoilerVaporKgH,
		PressureBar: in.BoilerPressureBar,
	})
	if err != nil {
		return Output{}, fmt.Errorf("boiler: %w", err)
	}
	turbine, err := equipment.SteamTurbine(equipment.TurbineInput{PowerKW: in.TurbinePowerKW})
	if err != nil {
		return Output{}, fmt.Errorf("turbine: %w", err)
	}
	pump, err := equipment.Pump(equipment.PumpInput{FlowLS: in.PumpFlowLS})
	if err != nil {
		return Output{}, fmt.Errorf("pump: %w", err)
	}
	condenser, err := equipment.William(in.CondenserRefCost, in.CondenserCapacity, in.CondenserRefCapacity, in.CondenserExponent)
	if err != nil {
		return Output{}, fmt.Errorf("condenser: %w", err)
	}

	capex := CapexBreakdown{
		Boiler:    boiler.CostEUR,
		Turbine:   turbine.CostEUR,
		Condenser: condenser,
		Pump:      pump.CostEUR,
	}
	capex.Total = float64(capex.Boiler) + float64(capex.Turbine) + capex.Condenser + float64(capex.Pump)

	loan, err := financing.Loan(financing.LoanInput{
		Principal: in.LoanFraction * capex.Total,
		Rate:      in.LoanRate,
		Years:     in.LoanYears,
	})
	if err != nil {
		return Output{}, fmt.Errorf("loan: %w", err)
	}
	dep, err := financing.Depreciation(financing.DepreciationInput{
		Rate:     in.DepreciationRate,
		Capex:    capex.Total,
		Residual: in.ResidualValue,
	})
	if err != nil {
		return Output{}, fmt.Errorf("depreciation: %w", err)
	}

	hours := defaultHoursPerYear * in.CapacityFactor
	sales := in.TurbinePowerKW * in.ElectricityPriceKWh * hours
	water := in.WaterPriceTon * in.WaterFlowTonH * hours
	salaries := float64(in.Shifts) * float64(in.OperatorsPerShift) * in.OperatorSalary

	ledger, err := cashflow.Assemble(cashflow.Assumptions{
		HorizonYears:   in.HorizonYears,
		Capex:          capex.Total,
		EquityFraction: 1 - in.LoanFraction,
		AnnualSales:    sales,
		AnnualWater:    water,
		AnnualSalaries: salaries,
		LoanInterest:   loan.Interest,
		LoanPrincipal:  loan.Principal,
		Depreciation:   dep,
	})
	if err != nil {
		return Output{}, fmt.Errorf("cash flow: %w", err)
	}

	irr, err := metrics.IRR(ledger.CashFlow)
	if err != nil {
		return Output{}, fmt.Errorf("irr: %w", err)
	}

	var warnings []string
	warnings = append(warnings, boiler.Warnings...)
	warnings = append(warnings, turbine.Warnings...)
	warnings = append(warnings, pump.Warnings...)

	return Output{
		Capex:       capex,
		Ledger:      ledger,
		NPV:         metrics.NPV(in.DiscountRate, ledger.CashFlow),
		IRR:         irr,
		PaybackYear: metrics.Payback(ledger.CashFlow),
		DCFTable:    metrics.DCFTable(in.DiscountRate, ledger.CashFlow),
		Warnings:    warnings,
	}, nil
}

func applyDefaults(in *Input) {
	if in.BoilerVaporKgH == 0 {
		in.BoilerVaporKgH = defaultBoilerVaporKgH
	}
	if in.BoilerPressureBar == 0 {
		in.BoilerPressureBar = defaultBoilerPressureBar
	}
	if in.TurbinePowerKW == 0 {
		in.TurbinePowerKW = defaultTurbinePowerKW
	}
	if in.PumpFlowLS == 0 {
		in.PumpFlowLS = defaultPumpFlowLS
	}
	if in.CondenserRefCost == 0 {
		in.CondenserRefCost = defaultCondenserRefCost
	}
	if in.CondenserRefCapacity == 0 {
		in.CondenserRefCapacity = defaultCondenserRefCapacity
	}
	if in.CondenserCapacity == 0 {
		in.CondenserCapacity = defaultCondenserCapacity
	}
	if in.CondenserExponent == 0 {
		in.CondenserExponent = defaultCondenserExponent
	}
	if in.CapacityFactor == 0 {
		in.CapacityFactor = defaultCapacityFactor
	}
	if in.ElectricityPriceKWh == 0 {
		in.ElectricityPriceKWh = defaultElectricityPriceKWh
	}
	if in.WaterPriceTon == 0 {
		in.WaterPriceTon = defaultWaterPriceTon
	}
	if in.WaterFlowTonH == 0 {
		in.WaterFlowTonH = defaultWaterFlowTonH
	}
	if in.Shifts == 0 {
		in.Shifts = defaultShifts
	}
	if in.OperatorsPerShift == 0 {
		in.OperatorsPerShift = defaultOperatorsPerShift
	}
	if in.OperatorSalary == 0 {
		in.OperatorSalary = defaultOperatorSalary
	}
	if in.LoanFraction == 0 {
		in.LoanFraction = defaultLoanFraction
	}
	if in.LoanRate == 0 {
		in.LoanRate = defaultLoanRate
	}
	if in.LoanYears == 0 {
		in.LoanYears = defaultLoanYears
	}
	if in.DepreciationRate == 0 {
		in.DepreciationRate = defaultDepreciationRate
	}
	if in.HorizonYears == 0 {
		in.HorizonYears = cashflow.DefaultHorizonYears
	}
	if in.DiscountRate == 0 {
		in.DiscountRate = defaultDiscountRate
	}
}
