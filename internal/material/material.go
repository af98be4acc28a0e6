// Package material holds the mechanical properties of the panel alloys and
// the allowable-stress lookups used by the strength checks.
package material

import (
	"github.com/aeroform/wingpanel/internal/errs"
)

// LoadKind selects which allowable stress governs a strength check.
type LoadKind string

const (
	Tension     LoadKind = "tension"
	Compression LoadKind = "compression"
	Shear       LoadKind = "shear"
)

// LoadKinds lists the recognized load kinds.
var LoadKinds = []LoadKind{Tension, Compression, Shear}

// ProductForm distinguishes rolled sheet from extruded profile stock.
type ProductForm string

const (
	Sheet   ProductForm = "sheet"
	Profile ProductForm = "profile"
)

// Material is the immutable property record shared by all panels and
// stiffeners of one analysis. All stresses and moduli are in Pa.
type Material struct {
	Name string
	Form ProductForm

	UltimateStrength  float64 // Pa, σ_u
	YieldStrength     float64 // Pa, σ_0.2
	ProportionalLimit float64 // Pa, σ_pl

	YoungModulus float64 // Pa, E
	ShearModulus float64 // Pa, G
	PoissonRatio float64
	Density      float64 // kg/m³

	AllowableTension     float64 // Pa
	AllowableCompression float64 // Pa
	AllowableShear       float64 // Pa

	SafetyFactorUltimate float64
	SafetyFactorYield    float64
}

// V95T1 returns the V95-T1 aluminum alloy record for the given product form.
// Extruded profiles carry a slightly higher yield strength than sheet.
func V95T1(form ProductForm) (*Material, error) {
	m := &Material{
		Name:                 "V95-T1",
		Form:                 form,
		UltimateStrength:     520e6,
		YoungModulus:         74e9,
		ShearModulus:         26e9,
		PoissonRatio:         0.32,
		Density:              2850,
		AllowableTension:     350e6,
		AllowableCompression: 300e6,
		AllowableShear:       180e6,
		SafetyFactorUltimate: 1.5,
		SafetyFactorYield:    1.15,
	}

	switch form {
	case Sheet:
		m.YieldStrength = 440e6
	case Profile:
		m.YieldStrength = 450e6
	default:
		return nil, &errs.InvalidLoadKind{Value: string(form), Valid: []string{string(Sheet), string(Profile)}}
	}
	m.ProportionalLimit = 0.8 * m.YieldStrength

	return m, nil
}

// AllowableStress returns the allowable stress for the given load kind.
func (m *Material) AllowableStress(kind LoadKind) (float64, error) {
	switch kind {
	case Tension:
		return m.AllowableTension, nil
	case Compression:
		return m.AllowableCompression, nil
	case Shear:
		return m.AllowableShear, nil
	}
	valid := make([]string, len(LoadKinds))
	for i, k := range LoadKinds {
		valid[i] = string(k)
	}
	return 0, &errs.InvalidLoadKind{Value: string(kind), Valid: valid}
}

// UltimateStress returns the allowable stress scaled by the ultimate safety
// factor for the given load kind.
func (m *Material) UltimateStress(kind LoadKind) (float64, error) {
	allowable, err := m.AllowableStress(kind)
	if err != nil {
		return 0, err
	}
	return allowable * m.SafetyFactorUltimate, nil
}
