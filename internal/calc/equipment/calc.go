package equipment

import (
	"fmt"
	"log"
	"math"
)

type BoilerInput struct {
	VaporKgH       float64 `json:"vapor_kg_h"`
	PressureBar    float64 `json:"pressure_bar"`
	MaterialFactor float64 `json:"material_factor"`
	BareOnly       bool    `json:"bare_only"`
}

type PumpInput struct {
	FlowLS         float64 `json:"flow_l_s"`
	MaterialFactor float64 `json:"material_factor"`
	BareOnly       bool    `json:"bare_only"`
}

type TurbineInput struct {
	PowerKW        float64 `json:"power_kw"`
	MaterialFactor float64 `json:"material_factor"`
	BareOnly       bool    `json:"bare_only"`
}

type Result struct {
	CostEUR  int      `json:"cost_eur"`
	Warnings []string `json:"warnings,omitempty"`
	Notes    string   `json:"notes"`
}

// Boiler estimates the cost of a steam boiler from its vapor production
// (kg/h) and operating pressure (bar). The correlation is valid for
// 5000 < Q < 800000 and 10 < p < 70; inputs outside those bounds still
// compute but the result carries a warning.
func Boiler(in BoilerInput) (Result, error) {
	if in.VaporKgH <= 0 || in.PressureBar <= 0 {
		return Result{}, fmt.Errorf("vapor production and pressure must be positive")
	}
	fm, err := materialFactor(in.MaterialFactor)
	if err != nil {
		return Result{}, err
	}

	var warnings []string
	if in.VaporKgH < 5000 || in.VaporKgH > 800000 {
		warnings = append(warnings, "boiler vapor production out of method bounds, 5000 < Q < 800000; results may not be accurate")
	}
	if in.PressureBar < 10 || in.PressureBar > 70 {
		warnings = append(warnings, "boiler pressure out of method bounds, 10 < p < 70; results may not be accurate")
	}
	logWarnings(warnings)

	c := boilerCorrelation(in.VaporKgH, in.PressureBar)
	if !in.BareOnly {
		c *= installedFactor(fm, PhaseFluids)
	}
	return Result{
		CostEUR:  int(c),
		Warnings: warnings,
		Notes:    "Steam boiler correlation, Fluids phase installation factors.",
	}, nil
}

// Pump estimates the cost of a centrifugal pump for a flow between
// 0.2 and 126 L/s.
func Pump(in PumpInput) (Result, error) {
	if in.FlowLS <= 0 {
		return Result{}, fmt.Errorf("flow must be positive")
	}
	fm, err := materialFactor(in.MaterialFactor)
	if err != nil {
		return Result{}, err
	}

	var warnings []string
	if in.FlowLS < 0.2 || in.FlowLS > 126 {
		warnings = append(warnings, "pump flow out of method bounds, 0.2 < Q (L/s) < 126; results may not be accurate")
	}
	logWarnings(warnings)

	c := pumpCorrelation(in.FlowLS)
	if !in.BareOnly {
		c *= installedFactor(fm, PhaseFluids)
	}
	return Result{
		CostEUR:  int(c),
		Warnings: warnings,
		Notes:    "Centrifugal pump correlation, Fluids phase installation factors.",
	}, nil
}

// SteamTurbine estimates the cost of a condensing steam turbine for a
// shaft power between 100 and 20000 kW.
func SteamTurbine(in TurbineInput) (Result, error) {
	if in.PowerKW <= 0 {
		return Result{}, fmt.Errorf("power must be positive")
	}
	fm, err := materialFactor(in.MaterialFactor)
	if err != nil {
		return Result{}, err
	}

	var warnings []string
	if in.PowerKW < 100 || in.PowerKW > 20000 {
		warnings = append(warnings, "steam turbine power out of method bounds, 100 < kW < 20000; results may not be accurate")
	}
	logWarnings(warnings)

	c := turbineCorrelation(in.PowerKW)
	if !in.BareOnly {
		c *= installedFactor(fm, PhaseFluids)
	}
	return Result{
		CostEUR:  int(c),
		Warnings: warnings,
		Notes:    "Steam turbine correlation, Fluids phase installation factors.",
	}, nil
}

// William scales a known reference cost to a new capacity:
// cost = costRef * (capacity/capacityRef)^n. The exponent n is process
// specific, typically between 0.6 and 1.0.
func William(costRef, capacity, capacityRef, n float64) (float64, error) {
	if costRef <= 0 || capacity <= 0 || capacityRef <= 0 {
		return 0, fmt.Errorf("reference cost and capacities must be positive")
	}
	if n <= 0 {
		return 0, fmt.Errorf("scaling exponent must be positive")
	}
	return costRef * math.Pow(capacity/capacityRef, n), nil
}

// boilerCorrelation is the piecewise size-to-cost decision table. Branch
// boundaries at Q=20000 and Q=200000; the mid range branches on pressure.
func boilerCorrelation(q, p float64) float64 {
	switch {
	case q < 20000:
		return math.Trunc(106000 + 8.7*q)
	case q < 200000:
		if p >= 15 && p < 40 {
			return math.Trunc(106000 + 8.7*q)
		}
		return math.Trunc(110000 + 4.5*math.Pow(q, 0.9))
	default:
		return math.Trunc(110000 + 4.5*math.Pow(q, 0.9))
	}
}

func pumpCorrelation(q float64) float64 {
	return math.Trunc(6900 + 206*math.Pow(q, 0.9))
}

func turbineCorrelation(kw float64) float64 {
	return math.Trunc(-12000 + 1630*math.Pow(kw, 0.75))
}

// materialFactor defaults a zero factor to 1 (carbon steel).
func materialFactor(fm float64) (float64, error) {
	if fm == 0 {
		return 1, nil
	}
	if fm < 0 {
		return 0, fmt.Errorf("material factor must be positive")
	}
	return fm, nil
}

func logWarnings(warnings []string) {
	for _, w := range warnings {
		log.Printf("WARNING: %s", w)
	}
}
