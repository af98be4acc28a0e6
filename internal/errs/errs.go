// Package errs defines the typed error kinds raised by the sizing engine.
// All kinds are plain structs so callers can distinguish them with errors.As.
package errs

import (
	"fmt"
	"strings"
)

// InvalidDimension reports a non-positive length, thickness or width.
type InvalidDimension struct {
	Name  string
	Value float64
}

func (e *InvalidDimension) Error() string {
	return fmt.Sprintf("%s must be positive, got %g", e.Name, e.Value)
}

// InvalidBoundaryCondition reports an unrecognized plate or column boundary condition.
type InvalidBoundaryCondition struct {
	Value string
	Valid []string
}

func (e *InvalidBoundaryCondition) Error() string {
	return fmt.Sprintf("unsupported boundary condition %q, valid: %s", e.Value, strings.Join(e.Valid, ", "))
}

// InvalidMethod reports an unrecognized effective-width method name.
type InvalidMethod struct {
	Value string
	Valid []string
}

func (e *InvalidMethod) Error() string {
	return fmt.Sprintf("unsupported reduction method %q, valid: %s", e.Value, strings.Join(e.Valid, ", "))
}

// InvalidLoadKind reports an unrecognized load kind for an allowable-stress lookup.
type InvalidLoadKind struct {
	Value string
	Valid []string
}

func (e *InvalidLoadKind) Error() string {
	return fmt.Sprintf("unsupported load kind %q, valid: %s", e.Value, strings.Join(e.Valid, ", "))
}

// MissingParameter reports a required derived or supplied value that has not
// been computed or set yet.
type MissingParameter struct {
	Name string
}

func (e *MissingParameter) Error() string {
	return fmt.Sprintf("%s is not set", e.Name)
}

// OutOfRange reports a value outside its valid interval, e.g. a span fraction
// outside [0, 1].
type OutOfRange struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("%s must be within [%g, %g], got %g", e.Name, e.Min, e.Max, e.Value)
}

// InvalidState reports a derived quantity that is non-positive where a ratio
// requires it, e.g. a zero effective moment of inertia.
type InvalidState struct {
	Name  string
	Value float64
}

func (e *InvalidState) Error() string {
	return fmt.Sprintf("%s must be positive at this point, got %g", e.Name, e.Value)
}

// InvalidGeometry reports an inconsistent stiffener or panel geometry input.
type InvalidGeometry struct {
	Msg string
}

func (e *InvalidGeometry) Error() string {
	return e.Msg
}
