package commands_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/greenbier/sportsfetch/cmd/sportsfetch/commands"
	"github.com/greenbier/sportsfetch/internal/dailylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves a canned sports API: every endpoint succeeds with
// records, except the paths listed in failing which get a 500.
func newTestServer(t *testing.T, failing ...string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, f := range failing {
			if strings.Contains(r.URL.Path, f) {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		_, _ = w.Write([]byte(`{"code": 0, "results": [{"id": 1}, {"id": 2}]}`))
	}))
	t.Cleanup(server.Close)
	return server
}

// readDailyFile returns the single daily file written in dir.
func readDailyFile(t *testing.T, dir string) dailylog.File {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "ReadDir should not return an error")
	require.Len(t, entries, 1, "Exactly one daily file should have been written")

	raw, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err, "Reading the daily file should not fail")

	var f dailylog.File
	require.NoError(t, json.Unmarshal(raw, &f), "Daily file should be valid JSON")
	return f
}

func TestRunCommand(t *testing.T) {
	tests := map[string]struct {
		failing []string

		wantSuccess int
		wantFailure int
	}{
		"All endpoints succeed": {
			wantSuccess: 6,
		},
		"Odds endpoint fails": {
			failing:     []string{"odds"},
			wantSuccess: 5,
			wantFailure: 1,
		},
		"Every endpoint fails": {
			failing:     []string{"match", "odds", "team", "competition", "country"},
			wantFailure: 6,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := newTestServer(t, tc.failing...)
			dataDir := filepath.Join(t.TempDir(), "data")

			app, err := commands.New()
			require.NoError(t, err, "Setup: could not create app")
			app.SetArgs("run",
				"--user", "testuser",
				"--secret", "testsecret",
				"--base-url", server.URL,
				"--data-dir", dataDir,
				"--delay", "1ms",
				"--timeout", "2s",
			)

			err = app.Run()
			require.NoError(t, err, "A completed run should not error, endpoint failures included")

			f := readDailyFile(t, dataDir)
			require.Len(t, f.Entries, 6, "One entry per endpoint should have been appended")

			wantOrder := []string{"live", "details", "odds", "team", "competition", "country"}
			var success, failure int
			for i, entry := range f.Entries {
				assert.Equal(t, wantOrder[i], entry.Endpoint, "Entries should be in the fixed endpoint order")
				switch entry.Status {
				case "success":
					success++
				case "failure":
					failure++
				}
			}
			assert.Equal(t, tc.wantSuccess, success, "Unexpected number of success entries")
			assert.Equal(t, tc.wantFailure, failure, "Unexpected number of failure entries")
		})
	}
}

func TestRunCommandRequiresCredentials(t *testing.T) {
	server := newTestServer(t)

	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")
	app.SetArgs("run",
		"--base-url", server.URL,
		"--data-dir", t.TempDir(),
	)

	err = app.Run()
	require.Error(t, err, "Run without credentials should fail")
}

func TestRunCommandWithConfigFile(t *testing.T) {
	server := newTestServer(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	confPath := commands.GenerateTestConfig(t, commands.TestConfigFile{
		User:    "conf-user",
		Secret:  "conf-secret",
		BaseURL: server.URL,
		DataDir: dataDir,
		Delay:   "1ms",
		Timeout: "2s",
	})

	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")
	app.SetArgs("run", "--config", confPath)

	err = app.Run()
	require.NoError(t, err, "Run configured through a config file should not error")

	f := readDailyFile(t, dataDir)
	assert.Len(t, f.Entries, 6, "One entry per endpoint should have been appended")
}

func TestRunCommandWithCredentialsFile(t *testing.T) {
	server := newTestServer(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	credsPath := filepath.Join(t.TempDir(), "credentials.toml")
	require.NoError(t, os.WriteFile(credsPath, []byte("user = \"file-user\"\nsecret = \"file-secret\"\n"), 0600),
		"Setup: writing the credentials file should not fail")

	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")
	app.SetArgs("run",
		"--credentials-file", credsPath,
		"--base-url", server.URL,
		"--data-dir", dataDir,
		"--delay", "1ms",
		"--timeout", "2s",
	)

	err = app.Run()
	require.NoError(t, err, "Run with a credentials file should not error")

	f := readDailyFile(t, dataDir)
	assert.Len(t, f.Entries, 6, "One entry per endpoint should have been appended")
}

func TestRunCommandWithMissingExplicitCredentialsFile(t *testing.T) {
	server := newTestServer(t)

	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")
	app.SetArgs("run",
		"--credentials-file", filepath.Join(t.TempDir(), "nope.toml"),
		"--base-url", server.URL,
		"--data-dir", t.TempDir(),
	)

	err = app.Run()
	require.Error(t, err, "An explicitly configured but missing credentials file should be fatal")
}

func TestRunCommandRejectsArgs(t *testing.T) {
	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")
	app.SetArgs("run", "unexpected")

	err = app.Run()
	require.Error(t, err, "Run should reject positional arguments")
	assert.True(t, app.UsageError(), "Rejected arguments should be a usage error")
}

func TestShowCommand(t *testing.T) {
	server := newTestServer(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")
	app.SetArgs("run",
		"--user", "testuser",
		"--secret", "testsecret",
		"--base-url", server.URL,
		"--data-dir", dataDir,
		"--delay", "1ms",
		"--timeout", "2s",
	)
	require.NoError(t, app.Run(), "Setup: run should not error")

	f := readDailyFile(t, dataDir)

	app, err = commands.New()
	require.NoError(t, err, "Setup: could not create app")

	var out bytes.Buffer
	app.RootCmd().SetOut(&out)
	app.SetArgs("show", f.Date, "--data-dir", dataDir)

	require.NoError(t, app.Run(), "Show of an existing day should not error")

	var shown dailylog.File
	require.NoError(t, json.Unmarshal(out.Bytes(), &shown), "Show output should be valid JSON")
	assert.Equal(t, f, shown, "Show should print the daily file as persisted")
}

func TestShowCommandErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"Missing day":  {args: []string{"show", "1999-01-01"}},
		"Invalid date": {args: []string{"show", "not-a-date"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app, err := commands.New()
			require.NoError(t, err, "Setup: could not create app")
			app.SetArgs(append(tc.args, "--data-dir", t.TempDir())...)

			require.Error(t, app.Run(), "Show should have returned an error")
		})
	}
}

func TestEndpointsCommand(t *testing.T) {
	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")

	var out bytes.Buffer
	app.RootCmd().SetOut(&out)
	app.SetArgs("endpoints")

	require.NoError(t, app.Run(), "Endpoints command should not error")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6, "Endpoints command should print one line per endpoint")
	assert.Contains(t, lines[0], "live", "First endpoint should be live")
	assert.Contains(t, lines[5], "country", "Last endpoint should be country")
	for _, line := range lines {
		assert.Contains(t, line, "https://api.thesports.com/v1/football/", "Each line should show the full URL")
	}
}

func TestVersionCommand(t *testing.T) {
	app, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")

	var out bytes.Buffer
	app.RootCmd().SetOut(&out)
	app.SetArgs("version")

	require.NoError(t, app.Run(), "Version command should not error")
	assert.Contains(t, out.String(), "sportsfetch", "Version output should carry the command name")
}
