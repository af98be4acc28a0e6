package reduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroform/wingpanel/internal/errs"
	"github.com/aeroform/wingpanel/internal/material"
)

func sheetMaterial(t *testing.T) *material.Material {
	t.Helper()
	m, err := material.V95T1(material.Sheet)
	require.NoError(t, err)
	return m
}

func TestEffectiveWidthWinter(t *testing.T) {
	mat := sheetMaterial(t)

	// λ_p = √(440/108.5) ≈ 2.014, well past the cutoff.
	bEff, rho, err := EffectiveWidth(0.150, 1.0849e8, 2e8, mat, Winter)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.44231, rho, 1e-3)
	assert.InEpsilon(t, 0.150*rho, bEff, 1e-9)
}

func TestEffectiveWidthWinterBelowCutoff(t *testing.T) {
	mat := sheetMaterial(t)

	// σ_cr far above yield keeps λ_p below the cutoff: no reduction.
	bEff, rho, err := EffectiveWidth(0.150, 1.5e9, 2e8, mat, Winter)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rho)
	assert.Equal(t, 0.150, bEff)
}

func TestEffectiveWidthKarman(t *testing.T) {
	mat := sheetMaterial(t)

	bEff, rho, err := EffectiveWidth(0.150, 1.0849e8, 2e8, mat, Karman)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.110477, bEff, 1e-3)
	assert.InEpsilon(t, bEff/0.150, rho, 1e-9)
}

func TestEffectiveWidthKarmanUnbuckled(t *testing.T) {
	mat := sheetMaterial(t)

	// Edge stress at or below the critical stress leaves the bay intact.
	bEff, rho, err := EffectiveWidth(0.150, 2e8, 1e8, mat, Karman)
	require.NoError(t, err)
	assert.Equal(t, 0.150, bEff)
	assert.Equal(t, 1.0, rho)
}

func TestEffectiveWidthNeverExceedsFullWidth(t *testing.T) {
	mat := sheetMaterial(t)

	for _, method := range Methods {
		for _, sigmaCr := range []float64{5e7, 1e8, 5e8, 2e9} {
			bEff, rho, err := EffectiveWidth(0.150, sigmaCr, 1.5e8, mat, method)
			require.NoError(t, err)
			assert.LessOrEqual(t, bEff, 0.150)
			assert.LessOrEqual(t, rho, 1.0)
			assert.Greater(t, bEff, 0.0)
		}
	}
}

func TestEffectiveWidthErrors(t *testing.T) {
	mat := sheetMaterial(t)

	_, _, err := EffectiveWidth(0.150, 1e8, 2e8, mat, Method("effective"))
	require.Error(t, err)
	var methodErr *errs.InvalidMethod
	assert.ErrorAs(t, err, &methodErr)

	_, _, err = EffectiveWidth(0, 1e8, 2e8, mat, Winter)
	require.Error(t, err)
	var dimErr *errs.InvalidDimension
	assert.ErrorAs(t, err, &dimErr)

	_, _, err = EffectiveWidth(0.150, 0, 2e8, mat, Winter)
	require.Error(t, err)
	assert.ErrorAs(t, err, &dimErr)

	_, _, err = EffectiveWidth(0.150, 1e8, -1, mat, Winter)
	require.Error(t, err)
	assert.ErrorAs(t, err, &dimErr)
}
