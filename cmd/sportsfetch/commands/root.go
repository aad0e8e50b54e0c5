// Package commands contains the commands of the sportsfetch command line tool.
package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/greenbier/sportsfetch/internal/cli"
	"github.com/greenbier/sportsfetch/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig
}

// appConfig holds the configuration for the application.
type appConfig struct {
	Verbosity int  `mapstructure:"verbose"`
	JSONLogs  bool `mapstructure:"json-logs"`

	User            string `mapstructure:"user"`
	Secret          string `mapstructure:"secret"`
	CredentialsFile string `mapstructure:"credentials-file"`

	BaseURL string        `mapstructure:"base-url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Delay   time.Duration `mapstructure:"delay"`
	DataDir string        `mapstructure:"data-dir"`
}

// New creates a new App instance with default values.
func New() (*App, error) {
	a := App{}

	a.cmd = &cobra.Command{
		Use:   constants.CmdName,
		Short: "Poll the sports data API and append responses to a daily JSON log",
		Long: `Sportsfetch polls the six fixed endpoints of the sports data API with signed
requests and appends one entry per call to a JSON file that rotates at
Eastern midnight. It is designed to be invoked by an external scheduler.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true

			cli.SetLogging(a.config.Verbosity, a.config.JSONLogs) // Set logging before loading config.
			if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config); err != nil {
				return fmt.Errorf("unable to decode configuration into struct: %w", err)
			}

			cli.SetLogging(a.config.Verbosity, a.config.JSONLogs)
			slog.Debug("Got app config", "dataDir", a.config.DataDir, "baseURL", a.config.BaseURL, "user", a.config.User)
			return nil
		},
	}
	a.viper = viper.New()
	a.cmd.CompletionOptions.HiddenDefaultCmd = true

	installRootFlags(&a)
	cli.InstallConfigFlag(a.cmd)

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	installRunCmd(&a)
	installShowCmd(&a)
	installEndpointsCmd(&a)
	a.installVersion()

	return &a, nil
}

func installRootFlags(app *App) {
	cmd := app.cmd

	cmd.PersistentFlags().CountVarP(&app.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	cmd.PersistentFlags().BoolVar(&app.config.JSONLogs, "json-logs", false, "emit process logs as JSON instead of Eastern-time text")

	cmd.PersistentFlags().StringVar(&app.config.User, "user", "", "API account user")
	cmd.PersistentFlags().StringVar(&app.config.Secret, "secret", "", "API account shared secret")
	cmd.PersistentFlags().StringVar(&app.config.CredentialsFile, "credentials-file", "", "TOML file holding the API user and secret")

	cmd.PersistentFlags().StringVar(&app.config.BaseURL, "base-url", constants.DefaultBaseURL, "base URL of the sports data API")
	cmd.PersistentFlags().DurationVar(&app.config.Timeout, "timeout", constants.DefaultRequestTimeout, "timeout for each endpoint call")
	cmd.PersistentFlags().DurationVar(&app.config.Delay, "delay", constants.DefaultFetchDelay, "pause between two successive endpoint calls")
	cmd.PersistentFlags().StringVar(&app.config.DataDir, "data-dir", constants.DefaultDataPath, "directory holding the daily JSON data files")

	if err := cmd.MarkPersistentFlagDirname("data-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark data-dir flag as directory: %v", err))
	}
	if err := cmd.MarkPersistentFlagFilename("credentials-file", "toml"); err != nil {
		panic(fmt.Sprintf("failed to mark credentials-file flag as filename: %v", err))
	}
}

// Run executes the command and associated process, returning an error if any.
func (a App) Run() error {
	return a.cmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}
