package buckling

import (
	"math"

	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/section"
)

// ElementCheck is the local-buckling verdict for one stiffener sub-element.
type ElementCheck struct {
	Kind     ElementKind
	Critical float64 // Pa
	Safe     bool
	Margin   float64 // critical / applied, +Inf at zero stress
}

// StiffenerCheck collects the local-buckling verdicts of a stiffener's web
// and flange. The governing element is the one with the lowest margin.
type StiffenerCheck struct {
	Web    ElementCheck
	Flange ElementCheck

	Safe            bool
	Governing       ElementKind
	GoverningMargin float64
}

// FlangeKind maps a stiffener profile to the element kind of its flange:
// Z flanges get their dedicated coefficient, channel and tee flanges count
// as internally supported, angle legs as free outstands.
func FlangeKind(profile section.Profile) ElementKind {
	switch profile {
	case section.ProfileZ:
		return FlangeZ
	case section.ProfileAngle:
		return FlangeFree
	default:
		return FlangeInternal
	}
}

func checkElement(width, thickness float64, mat *material.Material, kind ElementKind, coeffs ElementCoefficients, stress float64) (ElementCheck, error) {
	critical, err := ElementCritical(width, thickness, mat, kind, coeffs)
	if err != nil {
		return ElementCheck{}, err
	}
	applied := math.Abs(stress)
	check := ElementCheck{
		Kind:     kind,
		Critical: critical,
		Safe:     applied < critical,
		Margin:   math.Inf(1),
	}
	if applied > 1e-6 {
		check.Margin = critical / applied
	}
	return check, nil
}

// CheckStiffener verifies the web and flange of a stiffener against local
// buckling at the given working stress and reports the governing (minimum)
// margin over both sub-elements.
func CheckStiffener(s *section.Stiffener, mat *material.Material, stress float64, coeffs ElementCoefficients) (*StiffenerCheck, error) {
	web, err := checkElement(s.WebHeight, s.WebThickness, mat, Web, coeffs, stress)
	if err != nil {
		return nil, err
	}
	flange, err := checkElement(s.FlangeWidth, s.FlangeThickness, mat, FlangeKind(s.Profile), coeffs, stress)
	if err != nil {
		return nil, err
	}

	check := &StiffenerCheck{
		Web:             web,
		Flange:          flange,
		Safe:            web.Safe && flange.Safe,
		Governing:       web.Kind,
		GoverningMargin: web.Margin,
	}
	if flange.Margin < check.GoverningMargin {
		check.Governing = flange.Kind
		check.GoverningMargin = flange.Margin
	}
	return check, nil
}
