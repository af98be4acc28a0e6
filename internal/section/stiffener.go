package section

import (
	"fmt"
	"math"

	"github.com/aeroform/wingpanel/internal/errs"
)

// Profile identifies the cross-section shape of a stiffener.
type Profile string

const (
	ProfileZ       Profile = "Z" // two flanges + web
	ProfileChannel Profile = "C" // two flanges + web
	ProfileTee     Profile = "T" // one flange + web
	ProfileAngle   Profile = "L" // two orthogonal legs
)

// Profiles lists the supported stiffener profiles.
var Profiles = []Profile{ProfileZ, ProfileChannel, ProfileTee, ProfileAngle}

// Stiffener is a longitudinal stiffening member riveted to the skin.
// Geometry is set at construction; the derived section properties are
// computed once and never change afterwards. All lengths are in meters.
type Stiffener struct {
	Profile Profile

	WebHeight       float64 // m
	FlangeWidth     float64 // m
	WebThickness    float64 // m
	FlangeThickness float64 // m
	FilletRadius    float64 // m

	// Derived once from geometry.
	Area      float64 // m², fillet-corrected
	Inertia   float64 // m⁴, about the profile's own centroidal axis
	CentroidY float64 // m, centroid height above the profile's lower edge
}

// minArea guards the fillet correction from driving tiny profiles to zero.
const minArea = 1e-6

// NewStiffener builds a stiffener of the given profile and computes its
// derived section properties. All geometric inputs must be positive; the
// fillet radius may be zero.
func NewStiffener(profile Profile, webHeight, flangeWidth, webThickness, flangeThickness, filletRadius float64) (*Stiffener, error) {
	switch profile {
	case ProfileZ, ProfileChannel, ProfileTee, ProfileAngle:
	default:
		return nil, &errs.InvalidGeometry{Msg: fmt.Sprintf("unsupported stiffener profile %q", profile)}
	}

	for _, dim := range []struct {
		name  string
		value float64
	}{
		{"web height", webHeight},
		{"flange width", flangeWidth},
		{"web thickness", webThickness},
		{"flange thickness", flangeThickness},
	} {
		if dim.value <= 0 {
			return nil, &errs.InvalidGeometry{Msg: fmt.Sprintf("stiffener %s must be positive, got %g", dim.name, dim.value)}
		}
	}
	if filletRadius < 0 {
		return nil, &errs.InvalidGeometry{Msg: fmt.Sprintf("stiffener fillet radius cannot be negative, got %g", filletRadius)}
	}

	s := &Stiffener{
		Profile:         profile,
		WebHeight:       webHeight,
		FlangeWidth:     flangeWidth,
		WebThickness:    webThickness,
		FlangeThickness: flangeThickness,
		FilletRadius:    filletRadius,
	}
	s.computeArea()
	s.computeInertia()
	return s, nil
}

// TypicalZ returns a Z-stiffener with dimensions typical for narrow-body
// upper wing panels (25×20 mm, 2 mm gauges, 3 mm fillets).
func TypicalZ() *Stiffener {
	s, _ := NewStiffener(ProfileZ, 0.025, 0.020, 0.002, 0.002, 0.003)
	return s
}

// TypicalChannel returns a channel stiffener with typical dimensions.
func TypicalChannel() *Stiffener {
	s, _ := NewStiffener(ProfileChannel, 0.025, 0.020, 0.002, 0.002, 0.003)
	return s
}

// TypicalTee returns a tee stiffener with typical dimensions.
func TypicalTee() *Stiffener {
	s, _ := NewStiffener(ProfileTee, 0.020, 0.025, 0.002, 0.002, 0.002)
	return s
}

// TypicalAngle returns an angle stiffener with typical dimensions.
func TypicalAngle() *Stiffener {
	s, _ := NewStiffener(ProfileAngle, 0.020, 0.020, 0.002, 0.002, 0.002)
	return s
}

// Typical returns the typical stiffener for the given profile.
func Typical(profile Profile) (*Stiffener, error) {
	switch profile {
	case ProfileZ:
		return TypicalZ(), nil
	case ProfileChannel:
		return TypicalChannel(), nil
	case ProfileTee:
		return TypicalTee(), nil
	case ProfileAngle:
		return TypicalAngle(), nil
	}
	return nil, &errs.InvalidGeometry{Msg: fmt.Sprintf("unsupported stiffener profile %q", profile)}
}

// computeArea sums the constituent rectangles of the profile and subtracts an
// approximate quarter-circle per fillet corner.
func (s *Stiffener) computeArea() {
	var area float64
	switch s.Profile {
	case ProfileZ, ProfileChannel:
		// two flanges + web
		area = 2*s.FlangeWidth*s.FlangeThickness + s.WebHeight*s.WebThickness
	case ProfileTee:
		// one flange + web
		area = s.FlangeWidth*s.FlangeThickness + s.WebHeight*s.WebThickness
	case ProfileAngle:
		// two orthogonal legs
		area = s.WebHeight*s.WebThickness + s.FlangeWidth*s.FlangeThickness
	}

	corners := 4
	if s.Profile == ProfileTee || s.Profile == ProfileAngle {
		corners = 2
	}
	area -= float64(corners) * math.Pi * s.FilletRadius * s.FilletRadius / 4

	s.Area = math.Max(area, minArea)
}

// computeInertia locates the centroid by first-moment summation over the
// constituent rectangles, then applies the parallel-axis theorem to each.
func (s *Stiffener) computeInertia() {
	switch s.Profile {
	case ProfileZ, ProfileChannel:
		totalHeight := s.WebHeight + 2*s.FlangeThickness

		flangeArea := s.FlangeWidth * s.FlangeThickness
		webArea := s.WebHeight * s.WebThickness
		firstMoment := flangeArea*(totalHeight-s.FlangeThickness/2) +
			webArea*(s.WebHeight/2+s.FlangeThickness) +
			flangeArea*(s.FlangeThickness/2)
		s.CentroidY = firstMoment / s.Area

		iTop := s.FlangeWidth*math.Pow(s.FlangeThickness, 3)/12 +
			flangeArea*math.Pow(totalHeight-s.FlangeThickness/2-s.CentroidY, 2)
		iWeb := s.WebThickness*math.Pow(s.WebHeight, 3)/12 +
			webArea*math.Pow(s.WebHeight/2+s.FlangeThickness-s.CentroidY, 2)
		iBottom := s.FlangeWidth*math.Pow(s.FlangeThickness, 3)/12 +
			flangeArea*math.Pow(s.FlangeThickness/2-s.CentroidY, 2)
		s.Inertia = iTop + iWeb + iBottom

	case ProfileTee:
		// flange on top, web below
		totalHeight := s.WebHeight + s.FlangeThickness

		flangeArea := s.FlangeWidth * s.FlangeThickness
		webArea := s.WebHeight * s.WebThickness
		firstMoment := flangeArea*(totalHeight-s.FlangeThickness/2) +
			webArea*(s.WebHeight/2)
		s.CentroidY = firstMoment / s.Area

		iFlange := s.FlangeWidth*math.Pow(s.FlangeThickness, 3)/12 +
			flangeArea*math.Pow(totalHeight-s.FlangeThickness/2-s.CentroidY, 2)
		iWeb := s.WebThickness*math.Pow(s.WebHeight, 3)/12 +
			webArea*math.Pow(s.WebHeight/2-s.CentroidY, 2)
		s.Inertia = iFlange + iWeb

	case ProfileAngle:
		// vertical leg from the lower edge, horizontal leg at the top
		hEff := math.Max(s.WebHeight, s.FlangeWidth)

		webArea := s.WebHeight * s.WebThickness
		flangeArea := s.FlangeWidth * s.FlangeThickness
		firstMoment := webArea*(s.WebHeight/2) +
			flangeArea*(hEff-s.FlangeThickness/2)
		s.CentroidY = firstMoment / s.Area

		iVertical := s.WebThickness*math.Pow(s.WebHeight, 3)/12 +
			webArea*math.Pow(s.WebHeight/2-s.CentroidY, 2)
		iHorizontal := s.FlangeThickness*math.Pow(s.FlangeWidth, 3)/12 +
			flangeArea*math.Pow(hEff-s.FlangeThickness/2-s.CentroidY, 2)
		s.Inertia = iVertical + iHorizontal
	}
}

// Height returns the overall profile height used to position the stiffener
// relative to the skin.
func (s *Stiffener) Height() float64 {
	switch s.Profile {
	case ProfileZ, ProfileChannel:
		return s.WebHeight + 2*s.FlangeThickness
	case ProfileTee:
		return s.WebHeight + s.FlangeThickness
	default:
		return math.Max(s.WebHeight, s.FlangeWidth)
	}
}

func (s *Stiffener) String() string {
	return fmt.Sprintf("Stiffener(%s, A=%.2f cm²)", s.Profile, s.Area*1e4)
}
