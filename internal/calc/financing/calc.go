package financing

import (
	"fmt"
	"math"
)

type LoanInput struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Years     int     `json:"years"`
}

// LoanSchedule is the constant-annuity amortization of a loan. Payment and
// the per-year series follow the spreadsheet PMT/IPMT/PPMT sign
// convention: money leaving the project is negative. The principal series
// sums to -Principal.
type LoanSchedule struct {
	Payment   float64   `json:"payment"`
	Interest  []float64 `json:"interest"`
	Principal []float64 `json:"principal"`
}

type DepreciationInput struct {
	Rate     float64 `json:"rate"`
	Capex    float64 `json:"capex"`
	Residual float64 `json:"residual"`
}

// Loan computes the fixed annual payment for a loan and decomposes each
// period into interest on the remaining balance and principal repayment.
func Loan(in LoanInput) (LoanSchedule, error) {
	if in.Principal <= 0 {
		return LoanSchedule{}, fmt.Errorf("loan principal must be positive")
	}
	if in.Rate < 0 || in.Rate > 1 {
		return LoanSchedule{}, fmt.Errorf("loan rate must be a fraction of unity")
	}
	if in.Years <= 1 {
		return LoanSchedule{}, fmt.Errorf("loan term must be longer than one year")
	}

	payment := -in.Principal / float64(in.Years)
	if in.Rate > 0 {
		payment = -in.Principal * in.Rate / (1 - math.Pow(1+in.Rate, -float64(in.Years)))
	}

	interest := make([]float64, in.Years)
	principal := make([]float64, in.Years)
	balance := in.Principal
	for i := range interest {
		interest[i] = -balance * in.Rate
		principal[i] = payment - interest[i]
		balance += principal[i]
	}

	return LoanSchedule{Payment: payment, Interest: interest, Principal: principal}, nil
}

// Depreciation builds a fixed-percentage-of-original-value schedule over
// the depreciable base (capex - residual). Full-rate years are charged
// until the undepreciated fraction drops below the rate; the remainder is
// charged in one final year, so the schedule sums to -(capex - residual).
func Depreciation(in DepreciationInput) ([]float64, error) {
	if in.Rate <= 0 || in.Rate > 1 {
		return nil, fmt.Errorf("depreciation rate must be a fraction of unity")
	}
	if in.Capex <= 0 {
		return nil, fmt.Errorf("capex must be positive")
	}
	if in.Residual < 0 || in.Residual >= in.Capex {
		return nil, fmt.Errorf("residual value must be non-negative and below capex")
	}

	base := in.Capex - in.Residual
	var schedule []float64
	remaining := 1.0
	for remaining >= in.Rate {
		schedule = append(schedule, -in.Rate*base)
		remaining -= in.Rate
	}
	schedule = append(schedule, -remaining*base)
	return schedule, nil
}
