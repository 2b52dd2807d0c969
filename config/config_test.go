package config_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/detourgraph/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 5, c.WindowSize)
	assert.Equal(t, 2.5, c.MinimumVelocity)
	assert.Equal(t, 32, c.UTMZone)
	require.NoError(t, c.Validate())
}

func TestLoadOverridesSubset(t *testing.T) {
	doc := "window_size: 8\nmax_hausdorff_meters: 75\n"
	c, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 8, c.WindowSize)
	assert.Equal(t, 75.0, c.MaxHausdorffMeters)
	// untouched fields keep their defaults
	assert.Equal(t, 2.5, c.MinimumVelocity)
}

func TestLoadUnknownKeyFails(t *testing.T) {
	_, err := config.Load(strings.NewReader("bogus_key: 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownConfigKey)
}

func TestValidateRejectsNonPositive(t *testing.T) {
	c := config.Default()
	c.ConnectionTimeout = 0
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}
