// Package strength recovers bending stresses over the effective section and
// checks them against the material allowables and local buckling limits.
package strength

import (
	"fmt"
	"math"

	"github.com/aeroform/wingpanel/internal/buckling"
	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/section"
)

// BendingStress returns σ = M·y/I for the signed distance y from the
// neutral axis.
func BendingStress(moment, inertia, y float64) (float64, error) {
	if inertia <= 0 {
		return 0, &errs.InvalidState{Name: "moment of inertia", Value: inertia}
	}
	return moment * y / inertia, nil
}

// Distribution is the bending-stress field over one panel section. Positive
// stresses compress the upper skin.
type Distribution struct {
	NeutralAxis float64 // m above the lower spar cap

	SkinStress        float64   // Pa at the skin outer fiber
	LowerFiberStress  float64   // Pa at the lower spar cap
	StiffenerStresses []float64 // Pa at each stiffener centroid

	MaxStress float64 // Pa, signed maximum over the reported fibers
	MinStress float64 // Pa, signed minimum
}

// StressDistribution evaluates the bending stresses of the panel's effective
// section under the given moment: at the skin outer fiber, the lower fiber
// and every stiffener centroid.
func StressDistribution(p *section.Panel, moment float64) (*Distribution, error) {
	if p.EffectiveInertia == 0 {
		return nil, &errs.MissingParameter{Name: "effective moment of inertia"}
	}
	if p.EffectiveInertia < 0 {
		return nil, &errs.InvalidState{Name: "effective moment of inertia", Value: p.EffectiveInertia}
	}

	neutralAxis, err := p.NeutralAxis()
	if err != nil {
		return nil, err
	}

	skinStress, err := BendingStress(moment, p.EffectiveInertia, p.BoxHeight-neutralAxis)
	if err != nil {
		return nil, err
	}
	lowerStress, err := BendingStress(moment, p.EffectiveInertia, -neutralAxis)
	if err != nil {
		return nil, err
	}

	dist := &Distribution{
		NeutralAxis:      neutralAxis,
		SkinStress:       skinStress,
		LowerFiberStress: lowerStress,
		MaxStress:        math.Max(skinStress, lowerStress),
		MinStress:        math.Min(skinStress, lowerStress),
	}

	for _, s := range p.Stiffeners {
		y := p.StiffenerCentroidY(s) - neutralAxis
		stress, err := BendingStress(moment, p.EffectiveInertia, y)
		if err != nil {
			return nil, err
		}
		dist.StiffenerStresses = append(dist.StiffenerStresses, stress)
		dist.MaxStress = math.Max(dist.MaxStress, stress)
		dist.MinStress = math.Min(dist.MinStress, stress)
	}

	return dist, nil
}

// Check is the verdict of one allowable-stress comparison.
type Check struct {
	Kind material.LoadKind

	Stress            float64 // Pa, as supplied (sign preserved)
	Allowable         float64 // Pa
	ProportionalLimit float64 // Pa

	Safe             bool // within both the allowable and the proportional limit
	SafeAllowable    bool
	SafeProportional bool

	MarginAllowable    float64 // allowable / |stress|, +Inf at zero stress
	MarginProportional float64
}

// CheckStress compares a working stress against the material's allowable for
// the given load kind and against the proportional limit.
func CheckStress(stress float64, mat *material.Material, kind material.LoadKind) (*Check, error) {
	allowable, err := mat.AllowableStress(kind)
	if err != nil {
		return nil, err
	}

	applied := math.Abs(stress)
	check := &Check{
		Kind:               kind,
		Stress:             stress,
		Allowable:          allowable,
		ProportionalLimit:  mat.ProportionalLimit,
		SafeAllowable:      applied <= allowable,
		SafeProportional:   applied <= mat.ProportionalLimit,
		MarginAllowable:    math.Inf(1),
		MarginProportional: math.Inf(1),
	}
	check.Safe = check.SafeAllowable && check.SafeProportional
	if applied > 1e-6 {
		check.MarginAllowable = allowable / applied
		check.MarginProportional = mat.ProportionalLimit / applied
	}
	return check, nil
}

// StiffenerResult pairs one stiffener's strength check with its local
// buckling check.
type StiffenerResult struct {
	Index    int
	Strength *Check
	Local    *buckling.StiffenerCheck
}

// PanelCheck is the full strength and local-stability verdict of one panel.
// The governing element is the one with the lowest margin across the skin
// strength check, every stiffener strength check and every stiffener
// sub-element buckling check.
type PanelCheck struct {
	Distribution *Distribution
	Skin         *Check
	Stiffeners   []StiffenerResult

	Safe             bool
	GoverningElement string
	GoverningMargin  float64
}

// CheckPanel computes the stress distribution under the given moment and
// verifies the skin and every stiffener, in strength and in local buckling.
func CheckPanel(p *section.Panel, mat *material.Material, moment float64, coeffs buckling.ElementCoefficients) (*PanelCheck, error) {
	dist, err := StressDistribution(p, moment)
	if err != nil {
		return nil, err
	}

	skinCheck, err := CheckStress(dist.SkinStress, mat, material.Compression)
	if err != nil {
		return nil, err
	}

	result := &PanelCheck{
		Distribution:     dist,
		Skin:             skinCheck,
		Safe:             skinCheck.Safe,
		GoverningElement: "skin",
		GoverningMargin:  skinCheck.MarginAllowable,
	}

	for i, s := range p.Stiffeners {
		stress := dist.MaxStress
		if i < len(dist.StiffenerStresses) {
			stress = dist.StiffenerStresses[i]
		}

		strengthCheck, err := CheckStress(stress, mat, material.Compression)
		if err != nil {
			return nil, err
		}
		localCheck, err := buckling.CheckStiffener(s, mat, stress, coeffs)
		if err != nil {
			return nil, err
		}

		result.Stiffeners = append(result.Stiffeners, StiffenerResult{
			Index:    i,
			Strength: strengthCheck,
			Local:    localCheck,
		})
		result.Safe = result.Safe && strengthCheck.Safe && localCheck.Safe

		if strengthCheck.MarginAllowable < result.GoverningMargin {
			result.GoverningMargin = strengthCheck.MarginAllowable
			result.GoverningElement = fmt.Sprintf("stiffener %d strength", i+1)
		}
		if localCheck.GoverningMargin < result.GoverningMargin {
			result.GoverningMargin = localCheck.GoverningMargin
			result.GoverningElement = fmt.Sprintf("stiffener %d %s buckling", i+1, localCheck.Governing)
		}
	}

	return result, nil
}
