// Package dailylog is the implementation of the daily log store component.
// The daily log store appends one entry per endpoint call to a JSON file named
// after the current Eastern calendar day, rotating to a new file when the day
// changes. The whole document is rewritten atomically on every append so the
// file parses as valid JSON between any two successful writes.
package dailylog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/greenbier/sportsfetch/internal/constants"
	"github.com/greenbier/sportsfetch/internal/easterntime"
	"github.com/greenbier/sportsfetch/internal/fileutils"
	"github.com/ubuntu/decorate"
)

// EntryTypeAPIData is the type tag of entries recording an endpoint call.
const EntryTypeAPIData = "api_data"

// ErrNoFile is returned when reading a day that has no file yet.
var ErrNoFile = errors.New("no daily file for that date")

// Entry is one recorded endpoint call.
type Entry struct {
	Timestamp    string         `json:"timestamp"`
	Type         string         `json:"type"`
	Endpoint     string         `json:"endpoint"`
	URL          string         `json:"url,omitempty"`
	RecordsCount int            `json:"records_count"`
	Status       string         `json:"status"`
	Data         map[string]any `json:"data"`
	Error        string         `json:"error,omitempty"`
}

// File is the document persisted for one Eastern calendar day.
type File struct {
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
	LastUpdated string  `json:"last_updated,omitempty"`
	Entries     []Entry `json:"entries"`
}

type timeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

type options struct {
	timeProvider timeProvider
}

var defaultOptions = options{
	timeProvider: realTimeProvider{},
}

// Options represents an optional function to override Store default values.
type Options func(*options)

// Store appends entries to daily rotating JSON files in a single directory.
type Store struct {
	dir string

	timeProvider timeProvider

	log *slog.Logger
}

// New returns a new Store rooted at dir, creating the directory if needed.
func New(l *slog.Logger, dir string, args ...Options) (*Store, error) {
	if dir == "" {
		dir = constants.DefaultDataPath
		l.Info("No data directory provided, defaulting to", "dataDir", dir)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	opts := defaultOptions
	for _, opt := range args {
		opt(&opts)
	}

	return &Store{
		dir:          dir,
		timeProvider: opts.timeProvider,
		log:          l,
	}, nil
}

// Append adds entry to the file of the current Eastern day, creating the file
// with a fresh created_at on the first write of the day. The previous day's
// file is never touched: rotation is purely a matter of which name gets written.
func (s *Store) Append(entry Entry) (err error) {
	defer decorate.OnError(&err, "daily log append failed")

	now := s.timeProvider.Now()
	date := easterntime.DateKey(now)
	path := s.FilePath(date)

	f, err := s.load(path, date, now)
	if err != nil {
		return err
	}

	f.Entries = append(f.Entries, entry)
	f.LastUpdated = easterntime.ISO8601(now)

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal daily file: %v", err)
	}

	if err := fileutils.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to write daily file: %v", err)
	}

	s.log.Debug("Appended entry to daily file", "file", path, "endpoint", entry.Endpoint, "status", entry.Status)
	return nil
}

// Read returns the parsed daily file for the given Eastern day (YYYY-MM-DD).
func (s *Store) Read(date string) (f File, err error) {
	defer decorate.OnError(&err, "daily log read failed")

	data, err := os.ReadFile(s.FilePath(date))
	if errors.Is(err, os.ErrNotExist) {
		return File{}, fmt.Errorf("%w: %s", ErrNoFile, date)
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to read daily file: %v", err)
	}

	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse daily file: %v", err)
	}

	return f, nil
}

// FilePath returns the path of the daily file for the given Eastern day.
// It does not check whether the file exists.
func (s *Store) FilePath(date string) string {
	return filepath.Join(s.dir, constants.DailyFilePrefix+date+constants.DailyFileExt)
}

// load reads the daily file at path, or returns a fresh document for date if
// no file exists yet. A file that exists but does not parse is a storage
// failure: silently restarting the day would drop already persisted entries.
func (s *Store) load(path, date string, now time.Time) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Info("Starting new daily file", "file", path, "date", date)
		return File{
			Date:      date,
			CreatedAt: easterntime.ISO8601(now),
			Entries:   []Entry{},
		}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to read daily file: %v", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse existing daily file %s: %v", path, err)
	}

	return f, nil
}
