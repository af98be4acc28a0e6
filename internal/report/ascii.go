package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/aeroform/wingpanel/internal/reduction"
)

// ConvergenceGraph renders the effective-width iteration history as a
// terminal plot, widths in millimeters over iteration number.
func ConvergenceGraph(history []reduction.Iteration) string {
	if len(history) == 0 {
		return ""
	}

	widths := make([]float64, len(history))
	for i, it := range history {
		widths[i] = it.EffectiveWidth * 1000
	}
	// A single point plots as a flat line of two samples.
	if len(widths) == 1 {
		widths = append(widths, widths[0])
	}

	var sb strings.Builder
	sb.WriteString("\nEFFECTIVE WIDTH PER ITERATION (mm):\n")
	sb.WriteString(asciigraph.Plot(widths,
		asciigraph.Height(8),
		asciigraph.Precision(1),
	))
	sb.WriteString("\n")
	last := history[len(history)-1]
	sb.WriteString(fmt.Sprintf("final: b_eff = %.1f mm, ρ = %.3f\n",
		last.EffectiveWidth*1000, last.ReductionRatio))
	return sb.String()
}
