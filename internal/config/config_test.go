package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, s.MaxIterations)
	assert.Equal(t, 0.02, s.Tolerance)
	assert.Equal(t, "winter", s.Method)
	assert.Equal(t, "hinged", s.BoundaryCondition)
	assert.Equal(t, "hinged", s.EndCondition)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WINGPANEL_MAX_ITERATIONS", "25")
	t.Setenv("WINGPANEL_TOLERANCE", "0.005")
	t.Setenv("WINGPANEL_METHOD", "karman")
	t.Setenv("WINGPANEL_LOG_LEVEL", "debug")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, s.MaxIterations)
	assert.Equal(t, 0.005, s.Tolerance)
	assert.Equal(t, "karman", s.Method)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WINGPANEL_MAX_ITERATIONS", "many")

	_, err := Load()
	require.Error(t, err)
}
