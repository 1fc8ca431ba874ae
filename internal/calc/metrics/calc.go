package metrics

import (
	"fmt"
	"math"
)

// NPV discounts a cash-flow sequence at the given rate. The first entry
// is taken at present value (exponent 0), matching the usual spreadsheet
// convention for a series that starts in the current year.
func NPV(rate float64, flows []float64) float64 {
	var total float64
	for i, f := range flows {
		total += f / math.Pow(1+rate, float64(i))
	}
	return total
}

// IRR finds the discount rate that zeroes the NPV of the sequence. The
// typical project profile (negative early, positive later) has a single
// root; it is bracketed by a coarse scan and then bisected.
func IRR(flows []float64) (float64, error) {
	if len(flows) < 2 {
		return 0, fmt.Errorf("need at least two cash-flow entries")
	}
	hasNeg, hasPos := false, false
	for _, f := range flows {
		if f < 0 {
			hasNeg = true
		}
		if f > 0 {
			hasPos = true
		}
	}
	if !hasNeg || !hasPos {
		return 0, fmt.Errorf("cash flows must change sign for an internal rate of return to exist")
	}

	const step = 0.001
	lo := -0.99
	flo := NPV(lo, flows)
	for r := lo + step; r <= 10.0; r += step {
		fr := NPV(r, flows)
		if flo == 0 {
			return lo, nil
		}
		if flo*fr <= 0 {
			return bisect(flows, lo, r), nil
		}
		lo, flo = r, fr
	}
	return 0, fmt.Errorf("no internal rate of return in (-0.99, 10)")
}

func bisect(flows []float64, lo, hi float64) float64 {
	flo := NPV(lo, flows)
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fmid := NPV(mid, flows)
		if math.Abs(fmid) < 1e-10 || hi-lo < 1e-12 {
			return mid
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return (lo + hi) / 2
}

// DCFTable expands a cash-flow sequence into the reporting matrix: row i
// holds flows[i] discounted back over every year offset 0..N-1.
func DCFTable(rate float64, flows []float64) [][]float64 {
	table := make([][]float64, len(flows))
	for i, f := range flows {
		row := make([]float64, len(flows))
		for j := range row {
			row[j] = f / math.Pow(1+rate, float64(j))
		}
		table[i] = row
	}
	return table
}

// Payback returns the 1-based year at which the per-year cash flow first
// turns non-negative, counting from year 1.
func Payback(flows []float64) int {
	years := 1
	for _, f := range flows {
		if f >= 0 {
			break
		}
		years++
	}
	return years
}
