package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aeroform/wingpanel/internal/section"
	"github.com/aeroform/wingpanel/internal/strength"
)

// ExportStressDiagram writes the bending-stress distribution over the box
// height to an image file (png, svg or pdf, by extension).
func ExportStressDiagram(p *section.Panel, dist *strength.Distribution, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported diagram format %q (use png, svg or pdf)", ext)
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("Bending stress, z/L = %.2f", p.SpanFraction)
	plt.X.Label.Text = "Stress (MPa)"
	plt.Y.Label.Text = "Height (mm)"

	// Linear stress field through the neutral axis.
	field := plotter.XYs{
		{X: dist.LowerFiberStress / 1e6, Y: 0},
		{X: 0, Y: dist.NeutralAxis * 1000},
		{X: dist.SkinStress / 1e6, Y: p.BoxHeight * 1000},
	}
	fieldLine, err := plotter.NewLine(field)
	if err != nil {
		return err
	}
	fieldLine.LineStyle.Width = vg.Points(2)
	fieldLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	plt.Add(fieldLine)
	plt.Legend.Add("stress", fieldLine)

	// Zero axis.
	zero := plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: p.BoxHeight * 1000},
	}
	zeroLine, err := plotter.NewLine(zero)
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	plt.Add(zeroLine)

	// Neutral axis marker.
	na := plotter.XYs{
		{X: dist.MinStress / 1e6, Y: dist.NeutralAxis * 1000},
		{X: dist.MaxStress / 1e6, Y: dist.NeutralAxis * 1000},
	}
	naLine, err := plotter.NewLine(na)
	if err != nil {
		return err
	}
	naLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	plt.Add(naLine)
	plt.Legend.Add("neutral axis", naLine)

	// Stiffener centroid stresses.
	if len(dist.StiffenerStresses) > 0 {
		pts := make(plotter.XYs, 0, len(dist.StiffenerStresses))
		for i, s := range p.Stiffeners {
			if i >= len(dist.StiffenerStresses) {
				break
			}
			pts = append(pts, plotter.XY{
				X: dist.StiffenerStresses[i] / 1e6,
				Y: p.StiffenerCentroidY(s) * 1000,
			})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
		plt.Add(scatter)
		plt.Legend.Add("stiffeners", scatter)
	}

	return plt.Save(6*vg.Inch, 4*vg.Inch, filename)
}
