package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/greenbier/sportsfetch/internal/api"
	"github.com/greenbier/sportsfetch/internal/constants"
	"github.com/greenbier/sportsfetch/internal/credentials"
	"github.com/greenbier/sportsfetch/internal/dailylog"
	"github.com/greenbier/sportsfetch/internal/run"
	"github.com/spf13/cobra"
)

func installRunCmd(app *App) {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch all endpoints once and append the results to the daily log",
		Long: `Fetch all configured endpoints once, in their fixed order, and append one
entry per call to the daily JSON file.

A failing endpoint is recorded as a failure entry and does not stop the run;
the next scheduled invocation is the retry mechanism. The command exits
non-zero only when the configuration is unusable or the daily file cannot be
written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Running collection")
			return app.collectRun(cmd)
		},
	}

	app.cmd.AddCommand(runCmd)
}

// collectRun wires the client, store and orchestrator together and performs one run.
func (a *App) collectRun(cmd *cobra.Command) error {
	l := slog.Default()

	if err := a.resolveCredentials(l); err != nil {
		return err
	}

	client, err := api.New(l, api.Config{
		BaseURL: a.config.BaseURL,
		User:    a.config.User,
		Secret:  a.config.Secret,
		Timeout: a.config.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	store, err := dailylog.New(l, a.config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to create daily log store: %w", err)
	}

	runner, err := run.New(l, client, store, run.Config{Delay: a.config.Delay})
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	_, err = runner.Run(cmd.Context())
	return err
}

// resolveCredentials fills in the user and secret from the credentials file
// when flags, env and config did not provide them. An explicitly configured
// file must exist; the default location is optional.
func (a *App) resolveCredentials(l *slog.Logger) error {
	if a.config.User != "" && a.config.Secret != "" {
		return nil
	}

	path := a.config.CredentialsFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(constants.DefaultConfigPath, constants.CredentialsFileName)
	}

	creds, err := credentials.Load(l, path)
	if errors.Is(err, credentials.ErrCredentialsFileNotFound) && !explicit {
		// Missing credentials are reported by the client config check.
		return nil
	}
	if err != nil {
		return err
	}

	if a.config.User == "" {
		a.config.User = creds.User
	}
	if a.config.Secret == "" {
		a.config.Secret = creds.Secret
	}
	return nil
}
