package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vport/internal/cli"
	"github.com/rshade/vport/internal/config"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// TestDemoCmd_Plain tests the non-interactive demo path.
func TestDemoCmd_Plain(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "demo", "--plain", "--items", "200", "--seed", "3",
		"--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "200 items")
	assert.Contains(t, out, "window [0..")
	assert.Contains(t, out, "item 0")
	assert.NotContains(t, out, "item 199", "far items must not be rendered")
}

// TestBenchCmd tests the benchmark command with a small workload.
func TestBenchCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "bench", "--items", "10000", "--ops", "50",
		"--lists", "2", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "2 lists")
	assert.Contains(t, out, "10,000 items")
	assert.Contains(t, out, "windows:")
	assert.Contains(t, out, "measures:")
}

// TestBenchCmd_RejectsBadFlags tests input validation.
func TestBenchCmd_RejectsBadFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "bench", "--items", "0", "--config", cfgPath)
	assert.Error(t, err)
}

// TestConfigCmds_InitAndValidate tests the config lifecycle end to end.
func TestConfigCmds_InitAndValidate(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config")

	// A second init without --force refuses to clobber.
	_, err = execute(t, "config", "init", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--config", cfgPath, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "validate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, config.SchemaVersion)
}

// TestConfigValidate_RejectsBrokenConfig tests validation failure surfaces.
func TestConfigValidate_RejectsBrokenConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Engine.DefaultEstimate = -1
	require.NoError(t, cfg.Save(cfgPath))

	_, err := execute(t, "config", "validate", "--config", cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestRootCmd_UnknownCommand tests cobra error propagation.
func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	assert.Error(t, err)
}
