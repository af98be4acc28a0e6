package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/geometry"
	"github.com/aeroform/wingpanel/internal/loads"
	"github.com/aeroform/wingpanel/internal/material"
	"github.com/aeroform/wingpanel/internal/reduction"
	"github.com/aeroform/wingpanel/internal/report"
	"github.com/aeroform/wingpanel/internal/section"
	"github.com/aeroform/wingpanel/internal/strength"
)

var (
	runMomentsFile   string
	runOverloadsFile string
	runAircraftFile  string
	runStations      string
	runRibPitch      float64
	runProfile       string
	runMaterial      string

	runMethod    string
	runBoundary  string
	runEnd       string
	runMaxIter   int
	runTolerance float64

	runShowGraph bool
)

var wingRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Sweep the semispan stations and size each upper panel",
	Long: `Size the upper wing panels at a set of span stations. At each station
the wing box geometry is interpolated, the bending moment is looked up
in the load-case table (scaled by the overload factors when supplied),
a preliminary skin gauge and stiffener layout are picked from the
moment and box width, and the post-buckling convergence loop is run.

A failing station is reported and the sweep continues.

Examples:
  wingpanel wing run --moments loads/moments.txt
  wingpanel wing run --moments loads/moments.txt --overloads loads/overloads.txt \
    --aircraft a320.yaml --stations 0.2,0.5,0.8`,
	RunE: runWingRun,
}

func init() {
	wingCmd.AddCommand(wingRunCmd)

	wingRunCmd.Flags().StringVar(&runMomentsFile, "moments", "", "Bending-moment table file [required]")
	wingRunCmd.Flags().StringVar(&runOverloadsFile, "overloads", "", "Overload factor file (ny_max, safety_factor)")
	wingRunCmd.Flags().StringVar(&runAircraftFile, "aircraft", "", "Aircraft geometry YAML (defaults to the built-in 737-800)")
	wingRunCmd.Flags().StringVar(&runStations, "stations", "0.2,0.4,0.6,0.8", "Span fractions to size, comma-separated")
	wingRunCmd.Flags().Float64Var(&runRibPitch, "rib-pitch", 500, "Panel length between ribs (mm)")
	wingRunCmd.Flags().StringVar(&runProfile, "profile", "Z", "Stiffener profile (Z, C, T, L)")
	wingRunCmd.Flags().StringVar(&runMaterial, "material", "sheet", "Material form (sheet, profile)")

	wingRunCmd.Flags().StringVar(&runMethod, "method", "", "Effective-width method (winter, karman)")
	wingRunCmd.Flags().StringVar(&runBoundary, "boundary", "", "Skin bay boundary condition (hinged, clamped, mixed)")
	wingRunCmd.Flags().StringVar(&runEnd, "end", "", "Panel end condition (hinged, clamped, mixed, cantilever)")
	wingRunCmd.Flags().IntVar(&runMaxIter, "max-iterations", 0, "Iteration ceiling")
	wingRunCmd.Flags().Float64Var(&runTolerance, "tolerance", 0, "Convergence tolerance (relative)")

	wingRunCmd.Flags().BoolVar(&runShowGraph, "graph", false, "Show convergence graph per station")

	wingRunCmd.MarkFlagRequired("moments")
}

func runWingRun(cmd *cobra.Command, args []string) error {
	mat, err := parseMaterialForm(runMaterial)
	if err != nil {
		return err
	}

	aircraft := geometry.Default737()
	if runAircraftFile != "" {
		aircraft, err = geometry.Load(runAircraftFile)
		if err != nil {
			return err
		}
	}

	table, err := loads.LoadMoments(runMomentsFile)
	if err != nil {
		return err
	}

	loadFactor := 1.0
	if runOverloadsFile != "" {
		overloads, err := loads.LoadOverloads(runOverloadsFile)
		if err != nil {
			return err
		}
		loadFactor = overloads.NyMax * overloads.SafetyFactor
		if loadFactor <= 0 {
			loadFactor = 1.0
		}
		logger.Info("applying overload factors",
			"ny_max", overloads.NyMax,
			"safety_factor", overloads.SafetyFactor)
	}

	stations, err := parseStations(runStations)
	if err != nil {
		return err
	}

	opts := sizingOptions(
		flagOrSetting(runMethod, settings.Method),
		flagOrSetting(runBoundary, settings.BoundaryCondition),
		flagOrSetting(runEnd, settings.EndCondition),
		intFlagOrSetting(runMaxIter, settings.MaxIterations),
		floatFlagOrSetting(runTolerance, settings.Tolerance),
	)

	report.Banner(os.Stdout, fmt.Sprintf("WING PANEL SIZING: %s", aircraft.Name))

	failed := 0
	for _, z := range stations {
		if err := sizeStation(aircraft, table, mat, z, loadFactor, opts); err != nil {
			failed++
			logger.Error("station sizing failed", "station", z, "err", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d stations failed", failed, len(stations))
	}
	return nil
}

func sizeStation(aircraft *geometry.Aircraft, table *loads.MomentTable, mat *material.Material, z, loadFactor float64, opts reduction.Options) error {
	boxHeight, err := aircraft.BoxHeight(z)
	if err != nil {
		return err
	}
	boxWidth, err := aircraft.BoxWidth(z)
	if err != nil {
		return err
	}
	moment, err := table.MomentAt(z)
	if err != nil {
		return err
	}
	moment *= loadFactor

	panel, err := preliminaryPanel(z, boxHeight, boxWidth, moment, runProfile)
	if err != nil {
		return err
	}

	result, err := reduction.Converge(panel, mat, moment, runRibPitch/1000, opts)
	if err != nil {
		return err
	}
	if !result.Converged {
		logger.Warn("iteration ceiling reached without convergence",
			"station", z, "iterations", result.Iterations)
	}

	check, err := strength.CheckPanel(panel, mat, moment, opts.ElementCoefficients)
	if err != nil {
		return err
	}

	report.WriteStation(os.Stdout, report.Station{
		Panel:  panel,
		Moment: moment,
		Result: result,
		Check:  check,
	})

	if runShowGraph {
		fmt.Println(report.ConvergenceGraph(result.History))
	}
	return nil
}

// preliminaryPanel picks a starting skin gauge from the moment magnitude and
// a stiffener layout from the box width, then assembles the station's panel.
func preliminaryPanel(z, boxHeight, boxWidth, moment float64, profileName string) (*section.Panel, error) {
	var thickness float64 // m
	switch m := math.Abs(moment); {
	case m > 8e6:
		thickness = 0.004
	case m > 4e6:
		thickness = 0.003
	default:
		thickness = 0.0025
	}

	var count int
	switch {
	case boxWidth > 1.5:
		count = 4
	case boxWidth > 1.0:
		count = 3
	default:
		count = 2
	}
	pitch := boxWidth / float64(count+1)

	panel, err := buildPanel(boxHeight*1000, boxWidth*1000, thickness*1000, pitch*1000, count, profileName)
	if err != nil {
		return nil, err
	}
	panel.SpanFraction = z
	return panel, nil
}

func parseStations(s string) ([]float64, error) {
	var stations []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		z, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid station %q: %w", part, err)
		}
		stations = append(stations, z)
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("no stations given")
	}
	return stations, nil
}
