// Package buckling provides the critical-stress models for skin bays,
// stiffener sub-elements and the stiffened panel as an equivalent column.
//
// The buckling coefficients and end-fixity factors are enumerated tables
// passed into each function rather than package-level constants, so tests
// and callers can substitute their own values.
package buckling

import (
	"math"

	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/section"
)

// BoundaryCondition names the edge or end support condition of a plate bay
// or an equivalent column.
type BoundaryCondition string

const (
	Hinged     BoundaryCondition = "hinged"     // both edges/ends simply supported
	Clamped    BoundaryCondition = "clamped"    // both edges/ends clamped
	Mixed      BoundaryCondition = "mixed"      // one clamped, one simply supported
	Cantilever BoundaryCondition = "cantilever" // one end free, one clamped (columns only)
)

// PlateCoefficients maps a boundary condition to the plate buckling
// coefficient k in σ_cr = k·π²E/(12(1−ν²))·(t/b)².
type PlateCoefficients map[BoundaryCondition]float64

// DefaultPlateCoefficients returns the classical flat-plate coefficients for
// a long bay in uniform compression.
func DefaultPlateCoefficients() PlateCoefficients {
	return PlateCoefficients{
		Hinged:  4.0,
		Clamped: 6.97,
		Mixed:   5.0,
	}
}

// ElementKind names the role of a stiffener sub-element, which determines its
// plate buckling coefficient.
type ElementKind string

const (
	Web            ElementKind = "web"             // web between flanges, both edges clamped
	FlangeInternal ElementKind = "flange_internal" // flange supported on both edges
	FlangeFree     ElementKind = "flange_free"     // free outstand, one edge unsupported
	FlangeZ        ElementKind = "flange_z"        // Z-profile flange
)

// ElementCoefficients maps a stiffener element kind to its buckling
// coefficient.
type ElementCoefficients map[ElementKind]float64

// DefaultElementCoefficients returns the coefficients for the supported
// stiffener sub-elements.
func DefaultElementCoefficients() ElementCoefficients {
	return ElementCoefficients{
		Web:            6.97,
		FlangeInternal: 4.0,
		FlangeFree:     0.43,
		FlangeZ:        0.425,
	}
}

// FixityFactors maps an end condition to the effective-length factor μ of
// the equivalent column.
type FixityFactors map[BoundaryCondition]float64

// DefaultFixityFactors returns the classical Euler end-fixity factors.
func DefaultFixityFactors() FixityFactors {
	return FixityFactors{
		Hinged:     1.0,
		Clamped:    0.5,
		Mixed:      0.7,
		Cantilever: 2.0,
	}
}

func boundaryNames(coeffs map[BoundaryCondition]float64) []string {
	names := make([]string, 0, len(coeffs))
	for _, bc := range []BoundaryCondition{Hinged, Clamped, Mixed, Cantilever} {
		if _, ok := coeffs[bc]; ok {
			names = append(names, string(bc))
		}
	}
	return names
}

// plateCritical evaluates σ_cr = k·π²E/(12(1−ν²))·(t/b)².
func plateCritical(k, thickness, width float64, mat *material.Material) float64 {
	e := mat.YoungModulus
	nu := mat.PoissonRatio
	ratio := thickness / width
	return k * math.Pi * math.Pi * e / (12 * (1 - nu*nu)) * ratio * ratio
}

// SkinCritical returns the local buckling stress of a flat skin bay of the
// given thickness and width (the stiffener pitch) in Pa.
func SkinCritical(thickness, bayWidth float64, mat *material.Material, bc BoundaryCondition, coeffs PlateCoefficients) (float64, error) {
	k, ok := coeffs[bc]
	if !ok {
		return 0, &errs.InvalidBoundaryCondition{Value: string(bc), Valid: boundaryNames(coeffs)}
	}
	if thickness <= 0 {
		return 0, &errs.InvalidDimension{Name: "skin thickness", Value: thickness}
	}
	if bayWidth <= 0 {
		return 0, &errs.InvalidDimension{Name: "bay width", Value: bayWidth}
	}
	return plateCritical(k, thickness, bayWidth, mat), nil
}

// ElementCritical returns the local buckling stress of one stiffener
// sub-element (web or flange) in Pa.
func ElementCritical(width, thickness float64, mat *material.Material, kind ElementKind, coeffs ElementCoefficients) (float64, error) {
	k, ok := coeffs[kind]
	if !ok {
		valid := make([]string, 0, len(coeffs))
		for _, ek := range []ElementKind{Web, FlangeInternal, FlangeFree, FlangeZ} {
			if _, present := coeffs[ek]; present {
				valid = append(valid, string(ek))
			}
		}
		return 0, &errs.InvalidBoundaryCondition{Value: string(kind), Valid: valid}
	}
	if width <= 0 {
		return 0, &errs.InvalidDimension{Name: "element width", Value: width}
	}
	if thickness <= 0 {
		return 0, &errs.InvalidDimension{Name: "element thickness", Value: thickness}
	}
	return plateCritical(k, thickness, width, mat), nil
}

// PanelCritical returns the overall (column) buckling stress of the stiffened
// panel treated as an equivalent column of the given length, using the
// blended modulus of the effective section. The panel's effective properties
// must already be computed.
func PanelCritical(p *section.Panel, panelLength float64, end BoundaryCondition, blendedModulus float64, factors FixityFactors) (float64, error) {
	mu, ok := factors[end]
	if !ok {
		return 0, &errs.InvalidBoundaryCondition{Value: string(end), Valid: boundaryNames(factors)}
	}
	if p.EffectiveArea <= 0 {
		return 0, &errs.MissingParameter{Name: "effective area"}
	}
	if p.EffectiveInertia <= 0 {
		return 0, &errs.MissingParameter{Name: "effective moment of inertia"}
	}
	if panelLength <= 0 {
		return 0, &errs.InvalidDimension{Name: "panel length", Value: panelLength}
	}
	if blendedModulus <= 0 {
		return 0, &errs.InvalidState{Name: "blended modulus", Value: blendedModulus}
	}

	radius := math.Sqrt(p.EffectiveInertia / p.EffectiveArea)
	slenderness := mu * panelLength / radius
	return math.Pi * math.Pi * blendedModulus / (slenderness * slenderness), nil
}
