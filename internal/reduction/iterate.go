package reduction

import (
	"math"

	"github.com/aeroform/wingpanel/internal/buckling"
	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/section"
)

// Options configures one convergence run. Zero-valued fields fall back to
// the defaults of DefaultOptions.
type Options struct {
	MaxIterations     int
	Tolerance         float64 // relative change below which an update counts as settled
	Method            Method
	BoundaryCondition buckling.BoundaryCondition // skin bay edges
	EndCondition      buckling.BoundaryCondition // panel ends, column check

	PlateCoefficients   buckling.PlateCoefficients
	ElementCoefficients buckling.ElementCoefficients
	FixityFactors       buckling.FixityFactors
}

// DefaultOptions returns the standard sizing setup: 2% tolerance, ten
// iterations, Winter reduction, hinged supports, classical coefficients.
func DefaultOptions() Options {
	return Options{
		MaxIterations:       10,
		Tolerance:           0.02,
		Method:              Winter,
		BoundaryCondition:   buckling.Hinged,
		EndCondition:        buckling.Hinged,
		PlateCoefficients:   buckling.DefaultPlateCoefficients(),
		ElementCoefficients: buckling.DefaultElementCoefficients(),
		FixityFactors:       buckling.DefaultFixityFactors(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxIterations <= 0 {
		o.MaxIterations = def.MaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = def.Tolerance
	}
	if o.Method == "" {
		o.Method = def.Method
	}
	if o.BoundaryCondition == "" {
		o.BoundaryCondition = def.BoundaryCondition
	}
	if o.EndCondition == "" {
		o.EndCondition = def.EndCondition
	}
	if o.PlateCoefficients == nil {
		o.PlateCoefficients = def.PlateCoefficients
	}
	if o.ElementCoefficients == nil {
		o.ElementCoefficients = def.ElementCoefficients
	}
	if o.FixityFactors == nil {
		o.FixityFactors = def.FixityFactors
	}
	return o
}

// Iteration is one recorded pass of the convergence loop.
type Iteration struct {
	EffectiveWidth float64 // m
	ReductionRatio float64
	EdgeStress     float64 // Pa
	CriticalStress float64 // Pa
	BlendedModulus float64 // Pa
}

// Result reports the outcome of a convergence run. A false Converged flag
// with Iterations == MaxIterations means the iteration ceiling was reached;
// the last computed values are still valid outputs.
type Result struct {
	Converged  bool
	Iterations int

	FinalEffectiveWidth float64 // m
	FinalEdgeStress     float64 // Pa
	FinalCriticalStress float64 // Pa
	FinalBlendedModulus float64 // Pa

	// GlobalCritical is the Euler column buckling stress of the converged
	// effective section under the final blended modulus.
	GlobalCritical float64 // Pa

	History []Iteration
}

// state carries the previous pass's values between iterations.
type state struct {
	effectiveWidth float64
	blendedModulus float64
}

func relativeChange(current, previous float64) float64 {
	if previous <= 0 {
		return 1.0
	}
	return math.Abs(current-previous) / previous
}

// Converge resolves the stress/stiffness circular dependency of the panel
// under the given bending moment by fixed-point iteration. Each pass
// computes the skin's critical stress, recovers the edge stress from the
// previous pass's effective section, applies the effective-width law,
// recomputes the section properties and the blended modulus, and tests both
// relative changes against the tolerance.
//
// The panel's effective attributes are overwritten in place; the panel must
// carry a positive skin thickness, a positive stiffener pitch and at least
// one stiffener.
func Converge(p *section.Panel, mat *material.Material, moment, panelLength float64, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if p.SkinThickness <= 0 {
		return nil, &errs.MissingParameter{Name: "skin thickness"}
	}
	if p.StiffenerPitch <= 0 {
		return nil, &errs.MissingParameter{Name: "stiffener pitch"}
	}
	if p.BoxHeight <= 0 {
		return nil, &errs.MissingParameter{Name: "box height"}
	}
	if len(p.Stiffeners) == 0 {
		return nil, &errs.MissingParameter{Name: "stiffener set"}
	}
	if panelLength <= 0 {
		return nil, &errs.InvalidDimension{Name: "panel length", Value: panelLength}
	}

	// First pass runs on the unreduced section: full pitch, elastic modulus.
	p.EffectiveSkinWidth = p.StiffenerPitch
	if err := p.ComputeEffectiveSection(); err != nil {
		return nil, err
	}
	prev := state{
		effectiveWidth: p.StiffenerPitch,
		blendedModulus: mat.YoungModulus,
	}

	result := &Result{}
	for i := 0; i < opts.MaxIterations; i++ {
		sigmaCr, err := buckling.SkinCritical(p.SkinThickness, p.StiffenerPitch, mat, opts.BoundaryCondition, opts.PlateCoefficients)
		if err != nil {
			return nil, err
		}

		// Edge stress at the skin outer fiber, from the previous pass's
		// effective section.
		if p.EffectiveInertia <= 0 {
			return nil, &errs.InvalidState{Name: "effective moment of inertia", Value: p.EffectiveInertia}
		}
		neutralAxis, err := p.NeutralAxis()
		if err != nil {
			return nil, err
		}
		sigmaEdge := moment * (p.BoxHeight - neutralAxis) / p.EffectiveInertia

		var bEff, rho float64
		if sigmaEdge > sigmaCr {
			bEff, rho, err = EffectiveWidth(p.StiffenerPitch, sigmaCr, sigmaEdge, mat, opts.Method)
			if err != nil {
				return nil, err
			}
		} else {
			bEff = p.StiffenerPitch
			rho = 1.0
		}

		p.EffectiveSkinWidth = bEff
		if err := p.ComputeEffectiveSection(); err != nil {
			return nil, err
		}

		blended, err := BlendedModulus(p.StiffenerArea(), p.SkinThickness*bEff, mat, sigmaEdge)
		if err != nil {
			return nil, err
		}

		result.History = append(result.History, Iteration{
			EffectiveWidth: bEff,
			ReductionRatio: rho,
			EdgeStress:     sigmaEdge,
			CriticalStress: sigmaCr,
			BlendedModulus: blended,
		})
		result.FinalEffectiveWidth = bEff
		result.FinalEdgeStress = sigmaEdge
		result.FinalCriticalStress = sigmaCr
		result.FinalBlendedModulus = blended

		widthChange := relativeChange(bEff, prev.effectiveWidth)
		modulusChange := relativeChange(blended, prev.blendedModulus)
		if widthChange < opts.Tolerance && modulusChange < opts.Tolerance {
			result.Converged = true
			result.Iterations = i + 1
			break
		}

		prev.effectiveWidth = bEff
		prev.blendedModulus = blended
	}

	if !result.Converged {
		result.Iterations = opts.MaxIterations
	}

	global, err := buckling.PanelCritical(p, panelLength, opts.EndCondition, result.FinalBlendedModulus, opts.FixityFactors)
	if err != nil {
		return nil, err
	}
	result.GlobalCritical = global

	return result, nil
}
