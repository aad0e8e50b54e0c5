package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type (
	AppConfig = appConfig
)

// Config returns the configuration of the app.
func (a *App) Config() AppConfig {
	return a.config
}

// RootCmd returns the root command.
func (a *App) RootCmd() *cobra.Command {
	return a.cmd
}

// SetArgs set some arguments on root command for tests.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}

// testConfigFile mirrors the config file keys understood by the application.
type testConfigFile struct {
	Verbose         int    `yaml:"verbose,omitempty"`
	User            string `yaml:"user,omitempty"`
	Secret          string `yaml:"secret,omitempty"`
	CredentialsFile string `yaml:"credentials-file,omitempty"`
	BaseURL         string `yaml:"base-url,omitempty"`
	Timeout         string `yaml:"timeout,omitempty"`
	Delay           string `yaml:"delay,omitempty"`
	DataDir         string `yaml:"data-dir,omitempty"`
}

// GenerateTestConfig writes a temporary config file for tests and returns its path.
func GenerateTestConfig(t *testing.T, conf testConfigFile) string {
	t.Helper()

	d, err := yaml.Marshal(conf)
	require.NoError(t, err, "Setup: failed to marshal config for tests")

	confPath := filepath.Join(t.TempDir(), "testconfig.yaml")
	require.NoError(t, os.WriteFile(confPath, d, 0600), "Setup: failed to write config for tests")

	return confPath
}

// TestConfigFile is the exported alias for test fixtures.
type TestConfigFile = testConfigFile
