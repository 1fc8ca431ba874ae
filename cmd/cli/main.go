package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"Plantek/internal/calc/export"
	"Plantek/internal/calc/model"
)

func main() {
	discountRate := flag.Float64("discount", 0, "discount rate (fraction of unity, 0 = default)")
	horizon := flag.Int("years", 0, "projection horizon in years (0 = default)")
	turbineKW := flag.Float64("turbine", 0, "turbine power in kW (0 = default)")
	xlsxPath := flag.String("o", "", "write results workbook to this path")
	flag.Parse()

	out, err := model.Run(model.Input{
		DiscountRate:   *discountRate,
		HorizonYears:   *horizon,
		TurbinePowerKW: *turbineKW,
	})
	if err != nil {
		log.Fatalf("model run failed: %v", err)
	}

	fmt.Printf("Capex: boiler %d, turbine %d, condenser %.0f, pump %d, total %.0f EUR\n",
		out.Capex.Boiler, out.Capex.Turbine, out.Capex.Condenser, out.Capex.Pump, out.Capex.Total)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "Concept")
	for year := 0; year < out.Ledger.Years; year++ {
		fmt.Fprintf(w, "\t%d", year)
	}
	fmt.Fprintln(w)
	for _, row := range out.Ledger.Rows() {
		fmt.Fprint(w, row.Name)
		for _, v := range row.Values {
			fmt.Fprintf(w, "\t%.0f", v)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nThe project has a net present value of %.2f EUR and an internal rate of return of %.2f%%\n",
		out.NPV, out.IRR*100)
	fmt.Printf("Payback in year %d\n", out.PaybackYear)
	for _, warning := range out.Warnings {
		fmt.Printf("WARNING: %s\n", warning)
	}

	if *xlsxPath != "" {
		f, err := export.Workbook(out)
		if err != nil {
			log.Fatalf("workbook build failed: %v", err)
		}
		if err := f.SaveAs(*xlsxPath); err != nil {
			log.Fatalf("workbook save failed: %v", err)
		}
		fmt.Printf("Results written to %s\n", *xlsxPath)
	}
}
