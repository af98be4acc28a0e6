// Package reduction implements post-buckling skin reduction: the
// effective-width laws, the stress-dependent modulus blending and the
// fixed-point iteration that drives a panel section to a self-consistent
// state under an applied bending moment.
package reduction

import (
	"math"

	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
)

// Method selects the empirical effective-width law.
type Method string

const (
	// Winter is the slenderness-based law with the yield-stress cutoff,
	// the usual choice for airframe skin.
	Winter Method = "winter"
	// Karman is the elastic von Kármán law driven by the edge stress.
	Karman Method = "karman"
)

// Methods lists the recognized reduction methods.
var Methods = []Method{Winter, Karman}

// winterCutoff is the plate slenderness below which the bay has not buckled.
const winterCutoff = 0.673

// EffectiveWidth returns the reduced skin width that still carries load at
// the edge stress, and the reduction ratio ρ = b_eff/b. The result never
// exceeds the full width; when the formulas overshoot, ρ is pinned to 1.
func EffectiveWidth(fullWidth, sigmaCr, sigmaEdge float64, mat *material.Material, method Method) (bEff, rho float64, err error) {
	switch method {
	case Winter, Karman:
	default:
		valid := make([]string, len(Methods))
		for i, m := range Methods {
			valid[i] = string(m)
		}
		return 0, 0, &errs.InvalidMethod{Value: string(method), Valid: valid}
	}
	if fullWidth <= 0 {
		return 0, 0, &errs.InvalidDimension{Name: "skin width", Value: fullWidth}
	}
	if sigmaCr <= 0 {
		return 0, 0, &errs.InvalidDimension{Name: "critical stress", Value: sigmaCr}
	}
	if sigmaEdge < 0 {
		return 0, 0, &errs.InvalidDimension{Name: "edge stress", Value: sigmaEdge}
	}

	switch method {
	case Winter:
		lambdaP := math.Sqrt(mat.YieldStrength / sigmaCr)
		if lambdaP <= winterCutoff {
			rho = 1.0
		} else {
			rho = (1 - 0.22/lambdaP) / lambdaP
		}
		bEff = rho * fullWidth

	case Karman:
		if sigmaEdge <= sigmaCr {
			bEff = fullWidth
			rho = 1.0
		} else {
			bEff = fullWidth * math.Sqrt(sigmaCr/sigmaEdge)
			rho = bEff / fullWidth
		}
	}

	if bEff > fullWidth {
		bEff = fullWidth
		rho = 1.0
	}
	return bEff, rho, nil
}
