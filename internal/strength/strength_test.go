package strength

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroform/wingpanel/internal/buckling"
	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/section"
)

func sheetMaterial(t *testing.T) *material.Material {
	t.Helper()
	m, err := material.V95T1(material.Sheet)
	require.NoError(t, err)
	return m
}

func effectivePanel(t *testing.T) *section.Panel {
	t.Helper()
	p := &section.Panel{
		BoxHeight:      0.380,
		Width:          0.450,
		SkinThickness:  0.003,
		StiffenerPitch: 0.150,
	}
	p.AddStiffener(section.TypicalZ())
	p.AddStiffener(section.TypicalZ())
	p.EffectiveSkinWidth = p.StiffenerPitch
	require.NoError(t, p.ComputeEffectiveSection())
	return p
}

func TestBendingStress(t *testing.T) {
	sigma, err := BendingStress(1000, 1e-6, 0.01)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e7, sigma, 1e-9)

	// Fibers below the axis see the opposite sign.
	sigma, err = BendingStress(1000, 1e-6, -0.01)
	require.NoError(t, err)
	assert.InEpsilon(t, -1e7, sigma, 1e-9)

	_, err = BendingStress(1000, 0, 0.01)
	require.Error(t, err)
	var state *errs.InvalidState
	assert.ErrorAs(t, err, &state)
}

func TestStressDistribution(t *testing.T) {
	p := effectivePanel(t)
	dist, err := StressDistribution(p, 3000)
	require.NoError(t, err)

	// Positive moment compresses the upper skin and relieves the lower
	// fiber; every stiffener sits above the neutral axis on an upper
	// panel, so its stress shares the skin's sign.
	assert.Greater(t, dist.SkinStress, 0.0)
	assert.Less(t, dist.LowerFiberStress, 0.0)
	require.Len(t, dist.StiffenerStresses, 2)
	for _, s := range dist.StiffenerStresses {
		assert.Less(t, s, 0.0)
		assert.Greater(t, s, dist.LowerFiberStress)
	}

	assert.Equal(t, dist.SkinStress, dist.MaxStress)
	assert.Equal(t, dist.LowerFiberStress, dist.MinStress)

	// The skin outer fiber is the farthest above the axis.
	na, err := p.NeutralAxis()
	require.NoError(t, err)
	want := 3000 * (p.BoxHeight - na) / p.EffectiveInertia
	assert.InEpsilon(t, want, dist.SkinStress, 1e-9)
}

func TestStressDistributionZeroMoment(t *testing.T) {
	p := effectivePanel(t)
	dist, err := StressDistribution(p, 0)
	require.NoError(t, err)

	assert.Zero(t, dist.SkinStress)
	assert.Zero(t, dist.LowerFiberStress)
	for _, s := range dist.StiffenerStresses {
		assert.Zero(t, s)
	}
}

func TestStressDistributionRequiresSection(t *testing.T) {
	p := &section.Panel{
		BoxHeight:      0.380,
		SkinThickness:  0.003,
		StiffenerPitch: 0.150,
	}
	p.AddStiffener(section.TypicalZ())

	_, err := StressDistribution(p, 3000)
	require.Error(t, err)
	var missing *errs.MissingParameter
	assert.ErrorAs(t, err, &missing)
}

func TestCheckStress(t *testing.T) {
	mat := sheetMaterial(t)

	check, err := CheckStress(150e6, mat, material.Compression)
	require.NoError(t, err)
	assert.True(t, check.Safe)
	assert.InEpsilon(t, 2.0, check.MarginAllowable, 1e-9)
	assert.InEpsilon(t, mat.ProportionalLimit/150e6, check.MarginProportional, 1e-9)

	// Above the compression allowable.
	check, err = CheckStress(320e6, mat, material.Compression)
	require.NoError(t, err)
	assert.False(t, check.Safe)
	assert.False(t, check.SafeAllowable)
	assert.Less(t, check.MarginAllowable, 1.0)

	// Sign is preserved in the record but ignored for the comparison.
	check, err = CheckStress(-150e6, mat, material.Compression)
	require.NoError(t, err)
	assert.True(t, check.Safe)
	assert.Equal(t, -150e6, check.Stress)
}

func TestCheckStressZero(t *testing.T) {
	mat := sheetMaterial(t)

	check, err := CheckStress(0, mat, material.Tension)
	require.NoError(t, err)
	assert.True(t, check.Safe)
	assert.True(t, math.IsInf(check.MarginAllowable, 1))
	assert.True(t, math.IsInf(check.MarginProportional, 1))
}

func TestCheckStressInvalidKind(t *testing.T) {
	mat := sheetMaterial(t)

	_, err := CheckStress(150e6, mat, material.LoadKind("torsion"))
	require.Error(t, err)
	var kindErr *errs.InvalidLoadKind
	assert.ErrorAs(t, err, &kindErr)
}

func TestCheckPanel(t *testing.T) {
	p := effectivePanel(t)
	mat := sheetMaterial(t)

	check, err := CheckPanel(p, mat, 1500, buckling.DefaultElementCoefficients())
	require.NoError(t, err)

	assert.True(t, check.Safe)
	require.Len(t, check.Stiffeners, 2)
	assert.NotEmpty(t, check.GoverningElement)
	assert.Greater(t, check.GoverningMargin, 1.0)

	for _, s := range check.Stiffeners {
		assert.True(t, s.Strength.Safe)
		assert.True(t, s.Local.Safe)
	}
}

func TestCheckPanelOverload(t *testing.T) {
	p := effectivePanel(t)
	mat := sheetMaterial(t)

	// Moment sized to push the skin stress well past the allowable.
	check, err := CheckPanel(p, mat, 5000, buckling.DefaultElementCoefficients())
	require.NoError(t, err)

	assert.False(t, check.Safe)
	assert.Less(t, check.GoverningMargin, 1.0)
}
