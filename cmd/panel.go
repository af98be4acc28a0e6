package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/buckling"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/reduction"
	"github.com/aeroform/wingpanel/internal/section"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Analyze a single stiffened panel",
}

func init() {
	rootCmd.AddCommand(panelCmd)
}

// parseMaterialForm resolves the --material flag into a material record.
func parseMaterialForm(form string) (*material.Material, error) {
	switch strings.ToLower(form) {
	case "sheet":
		return material.V95T1(material.Sheet)
	case "profile":
		return material.V95T1(material.Profile)
	}
	return nil, fmt.Errorf("unsupported material form %q (use sheet or profile)", form)
}

// parseProfile resolves the --profile flag into a stiffener profile.
func parseProfile(name string) (section.Profile, error) {
	switch strings.ToUpper(name) {
	case "Z":
		return section.ProfileZ, nil
	case "C":
		return section.ProfileChannel, nil
	case "T":
		return section.ProfileTee, nil
	case "L":
		return section.ProfileAngle, nil
	}
	return "", fmt.Errorf("unsupported stiffener profile %q (use Z, C, T or L)", name)
}

// buildPanel assembles a panel from millimeter-unit flag values and populates
// it with typical stiffeners of the requested profile.
func buildPanel(boxHeightMM, widthMM, thicknessMM, pitchMM float64, count int, profileName string) (*section.Panel, error) {
	profile, err := parseProfile(profileName)
	if err != nil {
		return nil, err
	}

	p := &section.Panel{
		BoxHeight:      boxHeightMM / 1000,
		Width:          widthMM / 1000,
		SkinThickness:  thicknessMM / 1000,
		StiffenerPitch: pitchMM / 1000,
	}
	for i := 0; i < count; i++ {
		s, err := section.Typical(profile)
		if err != nil {
			return nil, err
		}
		p.AddStiffener(s)
	}
	return p, nil
}

// sizingOptions maps the common method/boundary flags (falling back to the
// environment settings) onto reduction options.
func sizingOptions(method, boundary, end string, maxIterations int, tolerance float64) reduction.Options {
	opts := reduction.DefaultOptions()
	opts.Method = reduction.Method(strings.ToLower(method))
	opts.BoundaryCondition = buckling.BoundaryCondition(strings.ToLower(boundary))
	opts.EndCondition = buckling.BoundaryCondition(strings.ToLower(end))
	opts.MaxIterations = maxIterations
	opts.Tolerance = tolerance
	return opts
}
