package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30*time.Second, cfg.SolveBudget)
	assert.Equal(t, 0, cfg.LogVerbosity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSolveBudget, cfg.SolveBudget)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solveBudget: 5s\nlogVerbosity: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.SolveBudget)
	assert.Equal(t, 2, cfg.LogVerbosity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{SolveBudget: time.Second, LogVerbosity: 1}, wantErr: false},
		{name: "zero budget", cfg: Config{SolveBudget: 0}, wantErr: true},
		{name: "negative budget", cfg: Config{SolveBudget: -time.Second}, wantErr: true},
		{name: "negative verbosity", cfg: Config{SolveBudget: time.Second, LogVerbosity: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
