package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ddgtrans/config"
)

func TestDefault(t *testing.T) {
	d := config.Default()
	assert.True(t, d.TRED)
	assert.True(t, d.ILP.NodeSup)
	assert.Equal(t, 500, d.ILP.MaxNodes)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/to/config.yaml")
	assert.Error(t, err)
}
