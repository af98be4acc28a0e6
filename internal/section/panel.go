package section

import (
	"fmt"
	"math"

	"github.com/aeroform/wingpanel/internal/errs"
)

// Panel represents one chordwise bay of the upper wing skin box at a fixed
// spanwise station: the skin plus the stiffeners it carries. A zero value in
// a geometric field means the field has not been set yet. All lengths are in
// meters, areas in m², inertias in m⁴.
//
// Stiffeners are owned by the panel: each Stiffener belongs to exactly one
// Panel and must not be shared.
type Panel struct {
	SpanFraction float64 // z/L of the analyzed station

	BoxHeight      float64 // m, wing box depth at the station
	Width          float64 // m, available width between spar webs
	SkinThickness  float64 // m, design variable
	StiffenerPitch float64 // m, spacing between adjacent stiffeners

	Stiffeners []*Stiffener

	// Effective properties, overwritten on every convergence pass.
	EffectiveSkinWidth float64 // m, reduced skin width carrying load
	EffectiveArea      float64 // m²
	EffectiveInertia   float64 // m⁴
}

// AddStiffener appends a stiffener to the panel.
func (p *Panel) AddStiffener(s *Stiffener) {
	p.Stiffeners = append(p.Stiffeners, s)
}

// StiffenerArea returns the summed cross-sectional area of all stiffeners.
func (p *Panel) StiffenerArea() float64 {
	var total float64
	for _, s := range p.Stiffeners {
		total += s.Area
	}
	return total
}

// StiffenerCentroidY returns the height of a stiffener's centroid above the
// lower spar cap. The stiffener hangs from the skin attachment plane, its
// centroid CentroidY below it.
func (p *Panel) StiffenerCentroidY(s *Stiffener) float64 {
	return p.BoxHeight - p.SkinThickness - s.CentroidY
}

// NeutralAxis locates the area-weighted centroid of the effective section,
// measured from the lower spar cap. The skin centroid sits half a thickness
// below the box's outer surface.
func (p *Panel) NeutralAxis() (float64, error) {
	if p.BoxHeight <= 0 {
		return 0, &errs.MissingParameter{Name: "box height"}
	}
	if p.SkinThickness <= 0 {
		return 0, &errs.MissingParameter{Name: "skin thickness"}
	}
	if p.EffectiveSkinWidth <= 0 {
		return 0, &errs.MissingParameter{Name: "effective skin width"}
	}
	if len(p.Stiffeners) == 0 {
		return 0, &errs.MissingParameter{Name: "stiffener set"}
	}

	skinArea := p.SkinThickness * p.EffectiveSkinWidth
	skinY := p.BoxHeight - p.SkinThickness/2

	totalArea := skinArea
	firstMoment := skinArea * skinY
	for _, s := range p.Stiffeners {
		y := p.StiffenerCentroidY(s)
		totalArea += s.Area
		firstMoment += s.Area * y
	}

	if totalArea <= 0 {
		return 0, &errs.InvalidState{Name: "section area", Value: totalArea}
	}
	return firstMoment / totalArea, nil
}

// ComputeEffectiveSection recomputes the effective area and moment of inertia
// from the current effective skin width. The inertia is a Steiner sum about
// the section's own neutral axis: each element contributes its self-inertia
// plus area times squared distance to the axis.
func (p *Panel) ComputeEffectiveSection() error {
	neutralAxis, err := p.NeutralAxis()
	if err != nil {
		return err
	}

	skinArea := p.SkinThickness * p.EffectiveSkinWidth
	skinY := p.BoxHeight - p.SkinThickness/2
	// Thin-plate self term about the horizontal bending axis.
	skinSelf := p.EffectiveSkinWidth * math.Pow(p.SkinThickness, 3) / 12

	area := skinArea
	inertia := skinSelf + skinArea*math.Pow(skinY-neutralAxis, 2)
	for _, s := range p.Stiffeners {
		y := p.StiffenerCentroidY(s)
		area += s.Area
		inertia += s.Inertia + s.Area*math.Pow(y-neutralAxis, 2)
	}

	p.EffectiveArea = area
	p.EffectiveInertia = inertia
	return nil
}

func (p *Panel) String() string {
	return fmt.Sprintf("Panel(z/L=%.2f, width=%.3f m, %d stiffeners)",
		p.SpanFraction, p.Width, len(p.Stiffeners))
}
