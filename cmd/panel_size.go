package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/reduction"
	"github.com/aeroform/wingpanel/internal/report"
	"github.com/aeroform/wingpanel/internal/strength"
)

var (
	sizeBoxHeight float64
	sizeWidth     float64
	sizeThickness float64
	sizePitch     float64
	sizeLength    float64
	sizeCount     int
	sizeProfile   string
	sizeMaterial  string
	sizeMoment    float64

	sizeMethod    string
	sizeBoundary  string
	sizeEnd       string
	sizeMaxIter   int
	sizeTolerance float64

	sizeShowGraph  bool
	sizeExportFile string
)

var panelSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Converge the effective section of one panel under a bending moment",
	Long: `Run the post-buckling convergence loop for a single stiffened panel:
compute the skin's local buckling stress, reduce the buckled bay to its
effective width, recompute the section properties and blended modulus,
and iterate until both settle within the tolerance.

Examples:
  # 3 mm skin, 150 mm pitch, 2 Z-stiffeners, 4.66 MN·m
  wingpanel panel size --box-height 380 --width 1500 --thickness 3 \
    --pitch 150 --stiffeners 2 --length 500 --moment 4.66

  # von Kármán reduction with clamped bay edges
  wingpanel panel size --box-height 380 --width 1500 --thickness 3 \
    --pitch 150 --stiffeners 2 --length 500 --moment 4.66 \
    --method karman --boundary clamped`,
	RunE: runPanelSize,
}

func init() {
	panelCmd.AddCommand(panelSizeCmd)

	panelSizeCmd.Flags().Float64Var(&sizeBoxHeight, "box-height", 0, "Wing box height (mm) [required]")
	panelSizeCmd.Flags().Float64Var(&sizeWidth, "width", 0, "Panel width between spars (mm)")
	panelSizeCmd.Flags().Float64VarP(&sizeThickness, "thickness", "t", 0, "Skin thickness (mm) [required]")
	panelSizeCmd.Flags().Float64VarP(&sizePitch, "pitch", "p", 0, "Stiffener pitch (mm) [required]")
	panelSizeCmd.Flags().Float64VarP(&sizeLength, "length", "l", 500, "Panel length between ribs (mm)")
	panelSizeCmd.Flags().IntVarP(&sizeCount, "stiffeners", "n", 2, "Number of stiffeners")
	panelSizeCmd.Flags().StringVar(&sizeProfile, "profile", "Z", "Stiffener profile (Z, C, T, L)")
	panelSizeCmd.Flags().StringVar(&sizeMaterial, "material", "sheet", "Material form (sheet, profile)")
	panelSizeCmd.Flags().Float64VarP(&sizeMoment, "moment", "m", 0, "Bending moment (MN·m) [required]")

	panelSizeCmd.Flags().StringVar(&sizeMethod, "method", "", "Effective-width method (winter, karman)")
	panelSizeCmd.Flags().StringVar(&sizeBoundary, "boundary", "", "Skin bay boundary condition (hinged, clamped, mixed)")
	panelSizeCmd.Flags().StringVar(&sizeEnd, "end", "", "Panel end condition (hinged, clamped, mixed, cantilever)")
	panelSizeCmd.Flags().IntVar(&sizeMaxIter, "max-iterations", 0, "Iteration ceiling")
	panelSizeCmd.Flags().Float64Var(&sizeTolerance, "tolerance", 0, "Convergence tolerance (relative)")

	panelSizeCmd.Flags().BoolVar(&sizeShowGraph, "graph", false, "Show convergence graph")
	panelSizeCmd.Flags().StringVarP(&sizeExportFile, "output", "o", "", "Export stress diagram to file (png, svg, pdf)")

	panelSizeCmd.MarkFlagRequired("box-height")
	panelSizeCmd.MarkFlagRequired("thickness")
	panelSizeCmd.MarkFlagRequired("pitch")
	panelSizeCmd.MarkFlagRequired("moment")
}

func runPanelSize(cmd *cobra.Command, args []string) error {
	mat, err := parseMaterialForm(sizeMaterial)
	if err != nil {
		return err
	}

	if sizeWidth == 0 {
		sizeWidth = sizePitch * float64(sizeCount+1)
	}
	panel, err := buildPanel(sizeBoxHeight, sizeWidth, sizeThickness, sizePitch, sizeCount, sizeProfile)
	if err != nil {
		return err
	}

	opts := sizingOptions(
		flagOrSetting(sizeMethod, settings.Method),
		flagOrSetting(sizeBoundary, settings.BoundaryCondition),
		flagOrSetting(sizeEnd, settings.EndCondition),
		intFlagOrSetting(sizeMaxIter, settings.MaxIterations),
		floatFlagOrSetting(sizeTolerance, settings.Tolerance),
	)

	moment := sizeMoment * 1e6
	result, err := reduction.Converge(panel, mat, moment, sizeLength/1000, opts)
	if err != nil {
		return err
	}
	if !result.Converged {
		logger.Warn("iteration ceiling reached without convergence",
			"iterations", result.Iterations)
	}

	check, err := strength.CheckPanel(panel, mat, moment, opts.ElementCoefficients)
	if err != nil {
		return err
	}

	report.Banner(os.Stdout, "STIFFENED PANEL SIZING")
	report.WriteStation(os.Stdout, report.Station{
		Panel:  panel,
		Moment: moment,
		Result: result,
		Check:  check,
	})

	if sizeShowGraph {
		fmt.Println(report.ConvergenceGraph(result.History))
	}

	if sizeExportFile != "" {
		if err := report.ExportStressDiagram(panel, check.Distribution, sizeExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Stress diagram exported to: %s\n", sizeExportFile)
	}
	return nil
}

func flagOrSetting(flag, setting string) string {
	if flag != "" {
		return flag
	}
	return setting
}

func intFlagOrSetting(flag, setting int) int {
	if flag > 0 {
		return flag
	}
	return setting
}

func floatFlagOrSetting(flag, setting float64) float64 {
	if flag > 0 {
		return flag
	}
	return setting
}
