package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroform/wingpanel/internal/buckling"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/reduction"
	"github.com/aeroform/wingpanel/internal/section"
	"github.com/aeroform/wingpanel/internal/strength"
)

func testStation(t *testing.T) Station {
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
	p.EffectiveSkinWidth = p.StiffenerPitch
	require.NoError(t, p.ComputeEffectiveSection())

	mat, err := material.V95T1(material.Sheet)
	require.NoError(t, err)

	check, err := strength.CheckPanel(p, mat, 1500, buckling.DefaultElementCoefficients())
	require.NoError(t, err)

	return Station{
		Panel:  p,
		Moment: 1500,
		Result: &reduction.Result{
			Converged:           true,
			Iterations:          2,
			FinalEffectiveWidth: p.EffectiveSkinWidth,
			FinalEdgeStress:     1.2e8,
			FinalCriticalStress: 1.08e8,
			FinalBlendedModulus: mat.YoungModulus,
			GlobalCritical:      4.2e8,
		},
		Check: check,
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "STIFFENED PANEL SIZING")
	out := buf.String()
	assert.Contains(t, out, "STIFFENED PANEL SIZING")
	assert.Contains(t, out, "═══")
}

func TestWriteStation(t *testing.T) {
	st := testStation(t)

	var buf bytes.Buffer
	WriteStation(&buf, st)
	out := buf.String()

	assert.Contains(t, out, "PANEL GEOMETRY:")
	assert.Contains(t, out, "CONVERGED EFFECTIVE SECTION:")
	assert.Contains(t, out, "STRESSES AND MARGINS:")
	assert.Contains(t, out, "converged (2 iterations)")
	assert.Contains(t, out, "PANEL OK")
}

func TestWriteStationNotAdequate(t *testing.T) {
	st := testStation(t)
	st.Check.Safe = false

	var buf bytes.Buffer
	WriteStation(&buf, st)
	assert.Contains(t, buf.String(), "PANEL NOT ADEQUATE")
}

func TestConvergenceGraph(t *testing.T) {
	history := []reduction.Iteration{
		{EffectiveWidth: 0.150, ReductionRatio: 1.0},
		{EffectiveWidth: 0.066, ReductionRatio: 0.44},
	}
	out := ConvergenceGraph(history)
	assert.Contains(t, out, "EFFECTIVE WIDTH PER ITERATION")
	assert.Contains(t, out, "b_eff = 66.0 mm")

	assert.Empty(t, ConvergenceGraph(nil))
}

func TestConvergenceGraphSinglePoint(t *testing.T) {
	out := ConvergenceGraph([]reduction.Iteration{{EffectiveWidth: 0.150, ReductionRatio: 1.0}})
	assert.Contains(t, out, "b_eff = 150.0 mm")
}

func TestExportStressDiagram(t *testing.T) {
	st := testStation(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "stress.png")
	require.NoError(t, ExportStressDiagram(st.Panel, st.Check.Distribution, path))
	assert.FileExists(t, path)

	err := ExportStressDiagram(st.Panel, st.Check.Distribution, filepath.Join(dir, "stress.bmp"))
	require.Error(t, err)
}
