package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroform/wingpanel/internal/errs"
)

func TestV95T1(t *testing.T) {
	sheet, err := V95T1(Sheet)
	require.NoError(t, err)
	assert.Equal(t, "V95-T1", sheet.Name)
	assert.Equal(t, 440e6, sheet.YieldStrength)
	assert.Equal(t, 0.8*440e6, sheet.ProportionalLimit)
	assert.Equal(t, 74e9, sheet.YoungModulus)
	assert.Equal(t, 0.32, sheet.PoissonRatio)

	profile, err := V95T1(Profile)
	require.NoError(t, err)
	assert.Equal(t, 450e6, profile.YieldStrength)
	assert.Equal(t, 0.8*450e6, profile.ProportionalLimit)

	_, err = V95T1(ProductForm("casting"))
	require.Error(t, err)
}

func TestAllowableStress(t *testing.T) {
	m, err := V95T1(Sheet)
	require.NoError(t, err)

	tests := []struct {
		kind LoadKind
		want float64
	}{
		{Tension, 350e6},
		{Compression, 300e6},
		{Shear, 180e6},
	}
	for _, tt := range tests {
		got, err := m.AllowableStress(tt.kind)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "kind %s", tt.kind)
	}

	_, err = m.AllowableStress(LoadKind("torsion"))
	require.Error(t, err)
	var kindErr *errs.InvalidLoadKind
	assert.ErrorAs(t, err, &kindErr)
}

func TestUltimateStress(t *testing.T) {
	m, err := V95T1(Sheet)
	require.NoError(t, err)

	got, err := m.UltimateStress(Compression)
	require.NoError(t, err)
	assert.Equal(t, 300e6*1.5, got)

	_, err = m.UltimateStress(LoadKind("torsion"))
	require.Error(t, err)
}
