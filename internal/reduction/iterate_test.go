package reduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/section"
)

func convergencePanel(t *testing.T) *section.Panel {
	t.Helper()
	p := &section.Panel{
		SpanFraction:   0.2,
		BoxHeight:      0.380,
		Width:          0.450,
		SkinThickness:  0.003,
		StiffenerPitch: 0.150,
	}
	p.AddStiffener(section.TypicalZ())
	p.AddStiffener(section.TypicalZ())
	return p
}

func TestConvergeBuckledSkin(t *testing.T) {
	p := convergencePanel(t)
	mat := sheetMaterial(t)

	result, err := Converge(p, mat, 4.66e6, 0.5, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.LessOrEqual(t, result.Iterations, 10)
	assert.Len(t, result.History, result.Iterations)

	// The skin buckles under this moment and sheds width.
	assert.Less(t, result.FinalEffectiveWidth, p.StiffenerPitch)
	assert.InEpsilon(t, 0.0663, result.FinalEffectiveWidth, 1e-2)
	assert.Greater(t, result.FinalEdgeStress, result.FinalCriticalStress)
	assert.InEpsilon(t, 1.0849e8, result.FinalCriticalStress, 1e-3)

	// The panel's effective attributes were overwritten in place.
	assert.Equal(t, result.FinalEffectiveWidth, p.EffectiveSkinWidth)
	assert.Greater(t, p.EffectiveInertia, 0.0)
	assert.Greater(t, result.GlobalCritical, 0.0)
}

func TestConvergeUnbuckledSkin(t *testing.T) {
	p := convergencePanel(t)
	mat := sheetMaterial(t)

	// Small moment: edge stress stays below the critical stress and the
	// full pitch carries load.
	result, err := Converge(p, mat, 1000, 0.5, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, p.StiffenerPitch, result.FinalEffectiveWidth)
	assert.InEpsilon(t, mat.YoungModulus, result.FinalBlendedModulus, 1e-9)
}

func TestConvergeIterationCeiling(t *testing.T) {
	p := convergencePanel(t)
	mat := sheetMaterial(t)

	opts := DefaultOptions()
	opts.MaxIterations = 1

	// The first pass always jumps from the seeded full width, so one
	// iteration cannot settle a buckled skin.
	result, err := Converge(p, mat, 4.66e6, 0.5, opts)
	require.NoError(t, err)

	assert.False(t, result.Converged)
	assert.Equal(t, 1, result.Iterations)
	// The last computed values are still reported.
	assert.Greater(t, result.FinalEffectiveWidth, 0.0)
	assert.Greater(t, result.GlobalCritical, 0.0)
}

func TestConvergeKarman(t *testing.T) {
	p := convergencePanel(t)
	mat := sheetMaterial(t)

	opts := DefaultOptions()
	opts.Method = Karman

	result, err := Converge(p, mat, 1000, 0.5, opts)
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, p.StiffenerPitch, result.FinalEffectiveWidth)
}

func TestConvergeMomentMonotonicity(t *testing.T) {
	mat := sheetMaterial(t)

	light := convergencePanel(t)
	lightResult, err := Converge(light, mat, 2e6, 0.5, DefaultOptions())
	require.NoError(t, err)

	heavy := convergencePanel(t)
	heavyResult, err := Converge(heavy, mat, 8e6, 0.5, DefaultOptions())
	require.NoError(t, err)

	// A heavier moment raises the edge stress; the effective width can
	// only shrink or stay.
	assert.GreaterOrEqual(t, lightResult.FinalEffectiveWidth, heavyResult.FinalEffectiveWidth)
	assert.Greater(t, heavyResult.FinalEdgeStress, lightResult.FinalEdgeStress)
}

func TestConvergeValidation(t *testing.T) {
	mat := sheetMaterial(t)

	tests := []struct {
		name   string
		mutate func(*section.Panel)
		length float64
	}{
		{"no skin thickness", func(p *section.Panel) { p.SkinThickness = 0 }, 0.5},
		{"no pitch", func(p *section.Panel) { p.StiffenerPitch = 0 }, 0.5},
		{"no box height", func(p *section.Panel) { p.BoxHeight = 0 }, 0.5},
		{"no stiffeners", func(p *section.Panel) { p.Stiffeners = nil }, 0.5},
		{"no length", func(p *section.Panel) {}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := convergencePanel(t)
			tt.mutate(p)

			_, err := Converge(p, mat, 4.66e6, tt.length, DefaultOptions())
			require.Error(t, err)
		})
	}
}

func TestConvergeInvalidMethod(t *testing.T) {
	p := convergencePanel(t)
	mat := sheetMaterial(t)

	opts := DefaultOptions()
	opts.Method = Method("effective")

	_, err := Converge(p, mat, 4.66e6, 0.5, opts)
	require.Error(t, err)
	var methodErr *errs.InvalidMethod
	assert.ErrorAs(t, err, &methodErr)
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	def := DefaultOptions()

	assert.Equal(t, def.MaxIterations, opts.MaxIterations)
	assert.Equal(t, def.Tolerance, opts.Tolerance)
	assert.Equal(t, def.Method, opts.Method)
	assert.Equal(t, def.BoundaryCondition, opts.BoundaryCondition)
	assert.Equal(t, def.EndCondition, opts.EndCondition)
	assert.NotNil(t, opts.PlateCoefficients)
	assert.NotNil(t, opts.ElementCoefficients)
	assert.NotNil(t, opts.FixityFactors)

	// Explicit values survive.
	custom := Options{MaxIterations: 3, Tolerance: 0.1}.withDefaults()
	assert.Equal(t, 3, custom.MaxIterations)
	assert.Equal(t, 0.1, custom.Tolerance)
}
