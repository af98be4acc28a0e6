// Package geometry provides the wing outer-mold-line lookups: chord, box
// height and spar positions by span fraction. Aircraft records can be loaded
// from YAML; a built-in narrow-body dataset covers the default case.
package geometry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aeroform/wingpanel/internal/errs"
)

// SparPositions holds the front and rear spar locations as chord fractions
// measured from the leading edge.
type SparPositions struct {
	Front float64 `yaml:"front"`
	Rear  float64 `yaml:"rear"`
}

// Aircraft is the wing geometry record of one aircraft. All lengths are in
// meters; spar positions are chord fractions.
type Aircraft struct {
	Name string `yaml:"name"`

	WingSpan  float64 `yaml:"wingSpan"`
	RootChord float64 `yaml:"rootChord"`
	TipChord  float64 `yaml:"tipChord"`

	SparsRoot SparPositions `yaml:"sparPositionsRoot"`
	SparsTip  SparPositions `yaml:"sparPositionsTip"`

	// Box heights for the piecewise-linear depth interpolation.
	BoxHeightRoot float64 `yaml:"boxHeightRoot"`
	BoxHeightMid  float64 `yaml:"boxHeightMid"`
	BoxHeightTip  float64 `yaml:"boxHeightTip"`
}

// Default737 returns the built-in Boeing 737-800 wing geometry.
func Default737() *Aircraft {
	return &Aircraft{
		Name:          "Boeing 737-800",
		WingSpan:      34.32,
		RootChord:     6.65,
		TipChord:      1.25,
		SparsRoot:     SparPositions{Front: 0.15, Rear: 0.60},
		SparsTip:      SparPositions{Front: 0.20, Rear: 0.74},
		BoxHeightRoot: 0.5,
		BoxHeightMid:  0.35,
		BoxHeightTip:  0.2,
	}
}

// Load reads an aircraft geometry record from a YAML file.
func Load(path string) (*Aircraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aircraft file: %w", err)
	}
	var a Aircraft
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse aircraft file %q: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("aircraft file %q: %w", path, err)
	}
	return &a, nil
}

// Validate checks that the geometry record is usable.
func (a *Aircraft) Validate() error {
	for _, dim := range []struct {
		name  string
		value float64
	}{
		{"wing span", a.WingSpan},
		{"root chord", a.RootChord},
		{"tip chord", a.TipChord},
		{"box height at root", a.BoxHeightRoot},
		{"box height at mid span", a.BoxHeightMid},
		{"box height at tip", a.BoxHeightTip},
	} {
		if dim.value <= 0 {
			return &errs.InvalidDimension{Name: dim.name, Value: dim.value}
		}
	}
	if a.SparsRoot.Rear <= a.SparsRoot.Front || a.SparsTip.Rear <= a.SparsTip.Front {
		return &errs.InvalidGeometry{Msg: "rear spar must lie behind the front spar"}
	}
	return nil
}

func checkSpanFraction(z float64) error {
	if z < 0 || z > 1 {
		return &errs.OutOfRange{Name: "span fraction", Value: z, Min: 0, Max: 1}
	}
	return nil
}

// Chord returns the local chord at span fraction z for the trapezoidal wing.
func (a *Aircraft) Chord(z float64) (float64, error) {
	if err := checkSpanFraction(z); err != nil {
		return 0, err
	}
	return a.RootChord - (a.RootChord-a.TipChord)*z, nil
}

// BoxHeight returns the wing box depth at span fraction z, interpolated
// piecewise-linearly between the root, mid-span and tip values.
func (a *Aircraft) BoxHeight(z float64) (float64, error) {
	if err := checkSpanFraction(z); err != nil {
		return 0, err
	}
	if z <= 0.5 {
		t := z / 0.5
		return a.BoxHeightRoot - (a.BoxHeightRoot-a.BoxHeightMid)*t, nil
	}
	t := (z - 0.5) / 0.5
	return a.BoxHeightMid - (a.BoxHeightMid-a.BoxHeightTip)*t, nil
}

// SparPositionsAt returns the interpolated front/rear spar chord fractions
// at span fraction z.
func (a *Aircraft) SparPositionsAt(z float64) (SparPositions, error) {
	if err := checkSpanFraction(z); err != nil {
		return SparPositions{}, err
	}
	return SparPositions{
		Front: a.SparsRoot.Front + (a.SparsTip.Front-a.SparsRoot.Front)*z,
		Rear:  a.SparsRoot.Rear + (a.SparsTip.Rear-a.SparsRoot.Rear)*z,
	}, nil
}

// BoxWidth returns the distance between the spar webs at span fraction z.
func (a *Aircraft) BoxWidth(z float64) (float64, error) {
	chord, err := a.Chord(z)
	if err != nil {
		return 0, err
	}
	spars, err := a.SparPositionsAt(z)
	if err != nil {
		return 0, err
	}
	return (spars.Rear - spars.Front) * chord, nil
}

// AbsolutePosition converts a span fraction into the distance from the wing
// root along the semispan.
func (a *Aircraft) AbsolutePosition(z float64) (float64, error) {
	if err := checkSpanFraction(z); err != nil {
		return 0, err
	}
	return z * a.WingSpan / 2, nil
}
