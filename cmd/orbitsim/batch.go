package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/orbitsim/internal/automation"
	"github.com/spf13/cobra"
)

func runBatch(cmd *cobra.Command, args []string) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	reports, err := automation.RunScenario(scenario, registry, logger.Named("batch"))
	if err != nil {
		return err
	}

	if scenario.Description != "" {
		fmt.Printf("%s: %s\n\n", scenario.Name, scenario.Description)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tINTEGRATOR\tSTEPS\tR MIN\tR MAX\tECCENTRICITY\tENERGY DRIFT\tSVG")
	for _, r := range reports {
		s := r.Summary
		svg := r.SVG
		if svg == "" {
			svg = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Integrator, s.Steps,
			num(s.RadiusMin), num(s.RadiusMax), num(s.Eccentricity),
			num(s.Metrics["energy_drift"]), svg)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	sweep := &automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepPoints,
	}
	results, err := automation.RunSweep(sweep, registry, logger.Named("sweep"))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tR MIN\tR MAX\tECCENTRICITY\tKEPLER PERIOD\t%s\n", sweepParam, sweepMetric)
	for _, r := range results {
		s := r.Summary
		fmt.Fprintf(w, "%.6g\t%s\t%s\t%s\t%s\t%s\n",
			r.ParamValue, num(s.RadiusMin), num(s.RadiusMax),
			num(s.Eccentricity), num(s.KeplerPeriod), num(s.Metrics[sweepMetric]))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := automation.Best(results, sweepMetric); ok {
		fmt.Printf("\nlowest %s at %s=%.6g\n", sweepMetric, sweepParam, best.ParamValue)
	}
	return nil
}
