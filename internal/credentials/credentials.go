// Package credentials is the implementation of the credentials manager component.
// The credentials manager reads the API account and shared secret from a TOML file,
// so the secret can live outside the main configuration and command line.
package credentials

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ubuntu/decorate"
)

// ErrCredentialsFileNotFound is returned when the credentials file does not exist.
var ErrCredentialsFileNotFound = errors.New("credentials file not found")

// Credentials holds the API account and its shared secret.
type Credentials struct {
	User   string `toml:"user"`
	Secret string `toml:"secret"`
}

// Load reads the credentials file at path.
// A missing file returns ErrCredentialsFileNotFound; callers decide whether
// that is fatal (no credentials from any other source) or ignorable.
func Load(l *slog.Logger, path string) (c Credentials, err error) {
	defer decorate.OnError(&err, "could not load credentials")

	_, err = toml.DecodeFile(path, &c)
	if errors.Is(err, os.ErrNotExist) {
		return Credentials{}, fmt.Errorf("%w: %s", ErrCredentialsFileNotFound, path)
	}
	if err != nil {
		return Credentials{}, err
	}

	l.Debug("Read credentials file", "file", path, "user", c.User)
	return c, nil
}
