package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/report"
	"github.com/aeroform/wingpanel/internal/strength"
)

var (
	stressBoxHeight float64
	stressWidth     float64
	stressThickness float64
	stressPitch     float64
	stressEffWidth  float64
	stressCount     int
	stressProfile   string
	stressMoment    float64
	stressExport    string
)

var panelStressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Bending-stress distribution over a panel section",
	Long: `Compute the neutral axis and the bending stresses at the skin outer
fiber, the lower fiber and each stiffener centroid for a given section.
By default the full stiffener pitch carries load; pass --effective-width
to analyze a reduced section.

Example:
  wingpanel panel stress --box-height 380 --thickness 3 --pitch 150 \
    --stiffeners 2 --moment 4.66`,
	RunE: runPanelStress,
}

func init() {
	panelCmd.AddCommand(panelStressCmd)

	panelStressCmd.Flags().Float64Var(&stressBoxHeight, "box-height", 0, "Wing box height (mm) [required]")
	panelStressCmd.Flags().Float64Var(&stressWidth, "width", 0, "Panel width between spars (mm)")
	panelStressCmd.Flags().Float64VarP(&stressThickness, "thickness", "t", 0, "Skin thickness (mm) [required]")
	panelStressCmd.Flags().Float64VarP(&stressPitch, "pitch", "p", 0, "Stiffener pitch (mm) [required]")
	panelStressCmd.Flags().Float64Var(&stressEffWidth, "effective-width", 0, "Effective skin width (mm), defaults to the full pitch")
	panelStressCmd.Flags().IntVarP(&stressCount, "stiffeners", "n", 2, "Number of stiffeners")
	panelStressCmd.Flags().StringVar(&stressProfile, "profile", "Z", "Stiffener profile (Z, C, T, L)")
	panelStressCmd.Flags().Float64VarP(&stressMoment, "moment", "m", 0, "Bending moment (MN·m) [required]")
	panelStressCmd.Flags().StringVarP(&stressExport, "output", "o", "", "Export stress diagram to file (png, svg, pdf)")

	panelStressCmd.MarkFlagRequired("box-height")
	panelStressCmd.MarkFlagRequired("thickness")
	panelStressCmd.MarkFlagRequired("pitch")
	panelStressCmd.MarkFlagRequired("moment")
}

func runPanelStress(cmd *cobra.Command, args []string) error {
	if stressWidth == 0 {
		stressWidth = stressPitch * float64(stressCount+1)
	}
	panel, err := buildPanel(stressBoxHeight, stressWidth, stressThickness, stressPitch, stressCount, stressProfile)
	if err != nil {
		return err
	}

	panel.EffectiveSkinWidth = panel.StiffenerPitch
	if stressEffWidth > 0 {
		panel.EffectiveSkinWidth = stressEffWidth / 1000
	}
	if err := panel.ComputeEffectiveSection(); err != nil {
		return err
	}

	moment := stressMoment * 1e6
	dist, err := strength.StressDistribution(panel, moment)
	if err != nil {
		return err
	}

	report.Banner(os.Stdout, "PANEL STRESS DISTRIBUTION")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective skin width:\t%.1f mm\n", panel.EffectiveSkinWidth*1000)
	fmt.Fprintf(w, "  Effective area:\t%.2f cm²\n", panel.EffectiveArea*1e4)
	fmt.Fprintf(w, "  Effective inertia:\t%.2f cm⁴\n", panel.EffectiveInertia*1e8)
	fmt.Fprintf(w, "  Neutral axis:\t%.1f mm\n", dist.NeutralAxis*1000)
	fmt.Fprintf(w, "  Skin stress:\t%.1f MPa\n", dist.SkinStress/1e6)
	fmt.Fprintf(w, "  Lower fiber stress:\t%.1f MPa\n", dist.LowerFiberStress/1e6)
	for i, s := range dist.StiffenerStresses {
		fmt.Fprintf(w, "  Stiffener %d stress:\t%.1f MPa\n", i+1, s/1e6)
	}
	fmt.Fprintf(w, "  Max / min stress:\t%.1f / %.1f MPa\n", dist.MaxStress/1e6, dist.MinStress/1e6)
	w.Flush()
	fmt.Println()

	if stressExport != "" {
		if err := report.ExportStressDiagram(panel, dist, stressExport); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Stress diagram exported to: %s\n", stressExport)
	}
	return nil
}
