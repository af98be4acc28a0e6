package reduction

import (
	"math"

	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
)

// Tangent-modulus model constants: the skin keeps its full elastic modulus
// up to elasticFraction of the yield stress, then degrades linearly to
// tangentFloor of it at yield, where it stays pinned.
const (
	elasticFraction = 0.6
	tangentFloor    = 0.1
)

// TangentModulus returns the stress-dependent skin stiffness E_t in Pa.
// The sign of the stress level is ignored.
func TangentModulus(mat *material.Material, stressLevel float64) float64 {
	e := mat.YoungModulus
	stress := math.Abs(stressLevel)

	threshold := elasticFraction * mat.YieldStrength
	switch {
	case stress < threshold:
		return e
	case stress >= mat.YieldStrength:
		return tangentFloor * e
	default:
		excess := (stress - threshold) / (mat.YieldStrength - threshold)
		return e - (e-tangentFloor*e)*excess
	}
}

// BlendedModulus combines the elastic stiffener stiffness with the
// (possibly reduced) skin tangent stiffness into one area-weighted modulus
// for the column-buckling check:
//
//	E_blend = (E·A_s + E_t·A_sk) / (A_s + A_sk)
//
// The result never exceeds the elastic modulus.
func BlendedModulus(stiffenerArea, effectiveSkinArea float64, mat *material.Material, stressLevel float64) (float64, error) {
	if stiffenerArea <= 0 {
		return 0, &errs.MissingParameter{Name: "stiffener area"}
	}
	if effectiveSkinArea < 0 {
		return 0, &errs.InvalidState{Name: "effective skin area", Value: effectiveSkinArea}
	}

	totalArea := stiffenerArea + effectiveSkinArea
	if totalArea <= 0 {
		return 0, &errs.MissingParameter{Name: "total section area"}
	}

	e := mat.YoungModulus
	et := TangentModulus(mat, stressLevel)
	blended := (e*stiffenerArea + et*effectiveSkinArea) / totalArea
	if blended > e {
		blended = e
	}
	return blended, nil
}
