package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/percolation/common"
	"github.com/uyouii/percolation/model"
)

func TestParseConfig(t *testing.T) {
	cfg, err := model.ParseConfig([]byte("grid_size: 200\ntrials: 30\nseed: 7\nformat: yaml\n"))
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.GridSize)
	assert.Equal(t, 30, cfg.Trials)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, model.YamlReport, cfg.Format)
	assert.NoError(t, cfg.Validate())

	_, err = model.ParseConfig([]byte("grid_size: [1"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.Config
		want error
	}{
		{"ok", model.Config{GridSize: 1, Trials: 1}, nil},
		{"zero grid", model.Config{GridSize: 0, Trials: 1}, common.ErrorInvalidArgument},
		{"zero trials", model.Config{GridSize: 3, Trials: 0}, common.ErrorInvalidArgument},
		{"negative workers", model.Config{GridSize: 3, Trials: 2, Workers: -1}, common.ErrorInvalidArgument},
		{"bad format", model.Config{GridSize: 3, Trials: 2, Format: "csv"}, common.ErrorInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSiteString(t *testing.T) {
	assert.Equal(t, "(2, 3)", model.Site{Row: 2, Col: 3}.String())
}
