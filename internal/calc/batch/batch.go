package batch

import (
	"fmt"

	"Plantek/internal/calc/equipment"
)

// Item is one equipment position in a costing list. Size carries the
// correlation's size parameter: vapor production (kg/h) for boilers, flow
// (L/s) for pumps, shaft power (kW) for turbines.
type Item struct {
	Kind           string  `json:"kind"`
	Size           float64 `json:"size"`
	PressureBar    float64 `json:"pressure_bar,omitempty"`
	MaterialFactor float64 `json:"material_factor,omitempty"`
	BareOnly       bool    `json:"bare_only,omitempty"`
}

type Input struct {
	Items []Item `json:"items"`
}

type Result struct {
	Results  []equipment.Result `json:"results"`
	TotalEUR int                `json:"total_eur"`
}

// Calculate costs every item in the list and totals them. Any invalid
// item aborts the whole batch.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]equipment.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := costItem(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
		out.TotalEUR += res.CostEUR
	}
	return out, nil
}

func costItem(item Item) (equipment.Result, error) {
	switch item.Kind {
	case "boiler":
		return equipment.Boiler(equipment.BoilerInput{
			VaporKgH:       item.Size,
			PressureBar:    item.PressureBar,
			MaterialFactor: item.MaterialFactor,
			BareOnly:       item.BareOnly,
		})
	case "pump":
		return equipment.Pump(equipment.PumpInput{
			FlowLS:         item.Size,
			MaterialFactor: item.MaterialFactor,
			BareOnly:       item.BareOnly,
		})
	case "turbine":
		return equipment.SteamTurbine(equipment.TurbineInput{
			PowerKW:        item.Size,
			MaterialFactor: item.MaterialFactor,
			BareOnly:       item.BareOnly,
		})
	default:
		return equipment.Result{}, fmt.Errorf("unknown equipment kind %q", item.Kind)
	}
}
