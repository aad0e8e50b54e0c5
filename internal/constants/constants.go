// Package constants is responsible for defining the constants used in the application.
// It also provides utility functions to get the default configuration and data paths.
package constants

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

var (
	// Version is the version of the application.
	Version = "Dev"
)

const (
	// CmdName is the name of the command line tool.
	CmdName = "sportsfetch"

	// DefaultAppFolder is the name of the default root folder.
	DefaultAppFolder = "sportsfetch"

	// DefaultLogLevel is the default logging level when no verbosity flag is given.
	DefaultLogLevel = slog.LevelWarn

	// DefaultBaseURL is the base URL of the remote sports data API.
	DefaultBaseURL = "https://api.thesports.com/v1/football"

	// DefaultRequestTimeout bounds each endpoint call.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultFetchDelay is the pause between two successive endpoint calls within one run.
	DefaultFetchDelay = time.Second

	// DailyFilePrefix is the prefix of the daily rotating JSON data files.
	DailyFilePrefix = "json_fetch_data_"

	// DailyFileExt is the extension of the daily rotating JSON data files.
	DailyFileExt = ".json"

	// CredentialsFileName is the default base name of the API credentials file.
	CredentialsFileName = "credentials.toml"

	// TimeZoneName is the named zone all dates and process log timestamps are expressed in.
	TimeZoneName = "America/New_York"
)

var (
	// DefaultConfigPath is the default app user configuration path. It's overridden when imported.
	DefaultConfigPath = DefaultAppFolder
	// DefaultDataPath is the default location of the daily JSON data files. It's overridden when imported.
	DefaultDataPath = DefaultAppFolder
)

func init() {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		panic(fmt.Sprintf("Could not fetch config directory: %v", err))
	}
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		panic(fmt.Sprintf("Could not fetch cache directory: %v", err))
	}

	DefaultConfigPath = filepath.Join(userConfigDir, DefaultConfigPath)
	DefaultDataPath = filepath.Join(userCacheDir, DefaultDataPath)
}
