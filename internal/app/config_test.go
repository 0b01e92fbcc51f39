package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloud-gen/internal/cloud"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("cloudview", pflag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"--scale=2", "--seed=9", "--size=200", "--density=3"}))
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 200, cfg.Params.Size)
	assert.Equal(t, 3, cfg.Params.Density)
	assert.Equal(t, cloud.DefaultParams().Spread, cfg.Params.Spread)
}
