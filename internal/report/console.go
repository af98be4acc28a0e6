// Package report renders analysis results: tabwriter console sections,
// terminal convergence graphs and exported stress diagrams.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/aeroform/wingpanel/internal/reduction"
	"github.com/aeroform/wingpanel/internal/section"
	"github.com/aeroform/wingpanel/internal/strength"
)

// Station bundles everything the console report needs for one span station.
type Station struct {
	Panel  *section.Panel
	Moment float64 // N·m
	Result *reduction.Result
	Check  *strength.PanelCheck
}

const rule = "───────────────────────────────────────────────────────────────"

// Banner writes the double-line section header used by all commands.
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func margin(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// WriteStation renders the full result block of one station.
func WriteStation(w io.Writer, st Station) {
	p := st.Panel

	fmt.Fprintln(w, "PANEL GEOMETRY:")
	fmt.Fprintln(w, rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Span station (z/L):\t%.2f\n", p.SpanFraction)
	fmt.Fprintf(tw, "  Panel width:\t%.1f mm\n", p.Width*1000)
	fmt.Fprintf(tw, "  Box height:\t%.1f mm\n", p.BoxHeight*1000)
	fmt.Fprintf(tw, "  Skin thickness:\t%.2f mm\n", p.SkinThickness*1000)
	fmt.Fprintf(tw, "  Stiffener pitch:\t%.1f mm\n", p.StiffenerPitch*1000)
	fmt.Fprintf(tw, "  Stiffeners:\t%d\n", len(p.Stiffeners))
	fmt.Fprintf(tw, "  Bending moment:\t%.2f MN·m\n", st.Moment/1e6)
	tw.Flush()
	fmt.Fprintln(w)

	if r := st.Result; r != nil {
		fmt.Fprintln(w, "CONVERGED EFFECTIVE SECTION:")
		fmt.Fprintln(w, rule)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		status := "converged"
		if !r.Converged {
			status = "iteration ceiling reached"
		}
		fmt.Fprintf(tw, "  Status:\t%s (%d iterations)\n", status, r.Iterations)
		fmt.Fprintf(tw, "  Effective skin width:\t%.1f mm\n", r.FinalEffectiveWidth*1000)
		fmt.Fprintf(tw, "  Reduction ratio:\t%.3f\n", r.FinalEffectiveWidth/p.StiffenerPitch)
		fmt.Fprintf(tw, "  Effective area:\t%.2f cm²\n", p.EffectiveArea*1e4)
		fmt.Fprintf(tw, "  Effective inertia:\t%.2f cm⁴\n", p.EffectiveInertia*1e8)
		fmt.Fprintf(tw, "  Edge stress:\t%.1f MPa\n", r.FinalEdgeStress/1e6)
		fmt.Fprintf(tw, "  Skin critical stress:\t%.1f MPa\n", r.FinalCriticalStress/1e6)
		fmt.Fprintf(tw, "  Blended modulus:\t%.1f GPa\n", r.FinalBlendedModulus/1e9)
		fmt.Fprintf(tw, "  Column critical stress:\t%.1f MPa\n", r.GlobalCritical/1e6)
		tw.Flush()
		fmt.Fprintln(w)
	}

	if c := st.Check; c != nil {
		fmt.Fprintln(w, "STRESSES AND MARGINS:")
		fmt.Fprintln(w, rule)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Neutral axis:\t%.1f mm\n", c.Distribution.NeutralAxis*1000)
		fmt.Fprintf(tw, "  Skin stress:\t%.1f MPa\n", c.Distribution.SkinStress/1e6)
		for i, s := range c.Distribution.StiffenerStresses {
			fmt.Fprintf(tw, "  Stiffener %d stress:\t%.1f MPa\n", i+1, s/1e6)
		}
		fmt.Fprintf(tw, "  Max / min stress:\t%.1f / %.1f MPa\n",
			c.Distribution.MaxStress/1e6, c.Distribution.MinStress/1e6)
		fmt.Fprintf(tw, "  Governing element:\t%s (margin %s)\n", c.GoverningElement, margin(c.GoverningMargin))
		tw.Flush()
		fmt.Fprintln(w)

		if c.Safe {
			fmt.Fprintln(w, "  ╔═════════════════════════════════════════╗")
			fmt.Fprintln(w, "  ║  PANEL OK                               ║")
			fmt.Fprintln(w, "  ╚═════════════════════════════════════════╝")
		} else {
			fmt.Fprintln(w, "  ╔═════════════════════════════════════════╗")
			fmt.Fprintln(w, "  ║  PANEL NOT ADEQUATE                     ║")
			fmt.Fprintln(w, "  ╚═════════════════════════════════════════╝")
		}
		fmt.Fprintln(w)
	}
}
