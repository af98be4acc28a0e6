package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/report"
	"github.com/aeroform/wingpanel/internal/strength"
)

var (
	checkStress   float64
	checkLoadKind string
	checkMaterial string
)

var panelCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare a working stress against the material allowables",
	Long: `Check a stress level against the allowable stress for the given load
kind and against the proportional limit, reporting both safety margins.

Example:
  wingpanel panel check --stress 250 --load compression`,
	RunE: runPanelCheck,
}

func init() {
	panelCmd.AddCommand(panelCheckCmd)

	panelCheckCmd.Flags().Float64VarP(&checkStress, "stress", "s", 0, "Working stress (MPa) [required]")
	panelCheckCmd.Flags().StringVar(&checkLoadKind, "load", "compression", "Load kind (tension, compression, shear)")
	panelCheckCmd.Flags().StringVar(&checkMaterial, "material", "sheet", "Material form (sheet, profile)")

	panelCheckCmd.MarkFlagRequired("stress")
}

func runPanelCheck(cmd *cobra.Command, args []string) error {
	mat, err := parseMaterialForm(checkMaterial)
	if err != nil {
		return err
	}

	check, err := strength.CheckStress(checkStress*1e6, mat, material.LoadKind(checkLoadKind))
	if err != nil {
		return err
	}

	report.Banner(os.Stdout, "ALLOWABLE STRESS CHECK")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s (%s)\n", mat.Name, mat.Form)
	fmt.Fprintf(w, "  Load kind:\t%s\n", check.Kind)
	fmt.Fprintf(w, "  Working stress:\t%.1f MPa\n", check.Stress/1e6)
	fmt.Fprintf(w, "  Allowable stress:\t%.1f MPa\n", check.Allowable/1e6)
	fmt.Fprintf(w, "  Proportional limit:\t%.1f MPa\n", check.ProportionalLimit/1e6)
	fmt.Fprintf(w, "  Margin to allowable:\t%s\n", formatMargin(check.MarginAllowable))
	fmt.Fprintf(w, "  Margin to prop. limit:\t%s\n", formatMargin(check.MarginProportional))
	w.Flush()
	fmt.Println()

	if check.Safe {
		fmt.Println("  Status: OK")
	} else {
		fmt.Println("  Status: NOT ADEQUATE")
	}
	fmt.Println()
	return nil
}

func formatMargin(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}
