// Package run is the implementation of the run orchestrator component.
// One run is a single sequential pass over the fixed endpoints: fetch, append
// the outcome to the daily log, pause, move on. A failing endpoint never stops
// the pass; a failing append does, since losing the log defeats the point.
package run

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/greenbier/sportsfetch/internal/api"
	"github.com/greenbier/sportsfetch/internal/constants"
	"github.com/greenbier/sportsfetch/internal/dailylog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fetcher is an interface for the endpoint client.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint api.Endpoint) api.Result
}

// Appender is an interface for the daily log store.
type Appender interface {
	Append(entry dailylog.Entry) error
}

type sleeper interface {
	Sleep(d time.Duration)
}

type realSleeper struct{}

func (realSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Summary is the aggregated outcome of one run.
type Summary struct {
	Total        int
	Succeeded    int
	Failed       int
	TotalRecords int
	Results      []api.Result
}

// Config represents the orchestrator specific data needed to run.
type Config struct {
	// Delay is the pause between two successive endpoint calls.
	Delay time.Duration
}

// Sanitize sets defaults and checks that the Config is properly configured.
func (c *Config) Sanitize(l *slog.Logger) error {
	if c.Delay < 0 {
		return fmt.Errorf("fetch delay cannot be negative: %v", c.Delay)
	}
	if c.Delay == 0 {
		c.Delay = constants.DefaultFetchDelay
		l.Debug("No fetch delay provided, defaulting to", "delay", c.Delay)
	}
	return nil
}

type options struct {
	sleeper   sleeper
	endpoints []api.Endpoint
}

var defaultOptions = options{
	sleeper:   realSleeper{},
	endpoints: api.Endpoints,
}

// Options represents an optional function to override Runner default values.
type Options func(*options)

// Runner performs one complete pass over the configured endpoints.
type Runner struct {
	fetcher   Fetcher
	store     Appender
	endpoints []api.Endpoint
	delay     time.Duration

	sleeper sleeper

	log *slog.Logger

	// Printer formats record counts for the summary line.
	printer *message.Printer
}

// New returns a new Runner.
// Sanitize the config before use, but Sanitize may be called beforehand safely.
func New(l *slog.Logger, fetcher Fetcher, store Appender, c Config, args ...Options) (*Runner, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher cannot be nil")
	}
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if err := c.Sanitize(l); err != nil {
		return nil, err
	}

	opts := defaultOptions
	for _, opt := range args {
		opt(&opts)
	}

	return &Runner{
		fetcher:   fetcher,
		store:     store,
		endpoints: opts.endpoints,
		delay:     c.Delay,
		sleeper:   opts.sleeper,
		log:       l,
		printer:   message.NewPrinter(language.AmericanEnglish),
	}, nil
}

// Run iterates the endpoints in their fixed order, appending one entry per
// call to the daily log. Endpoint failures are recorded and the pass continues;
// only an append failure aborts. One summary line is logged at the end.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	r.log.Info("Starting data collection", "endpoints", len(r.endpoints))

	summary := Summary{
		Total:   len(r.endpoints),
		Results: make([]api.Result, 0, len(r.endpoints)),
	}

	for i, endpoint := range r.endpoints {
		if i > 0 {
			r.sleeper.Sleep(r.delay)
		}

		r.log.Info("Fetching endpoint", "endpoint", endpoint.Name)
		result := r.fetcher.Fetch(ctx, endpoint)
		summary.Results = append(summary.Results, result)

		if err := r.store.Append(entryFor(result)); err != nil {
			return Summary{}, fmt.Errorf("failed to record %s result: %w", endpoint.Name, err)
		}

		if result.Succeeded() {
			summary.Succeeded++
			summary.TotalRecords += result.RecordsCount
			r.log.Info("Endpoint fetched", "endpoint", endpoint.Name, "records", result.RecordsCount)
			continue
		}
		summary.Failed++
		r.log.Error("Endpoint fetch failed", "endpoint", endpoint.Name, "error", result.Error)
	}

	r.log.Info(fmt.Sprintf("Run completed: %d/%d endpoints succeeded", summary.Succeeded, summary.Total),
		"records", r.printer.Sprintf("%d", summary.TotalRecords),
		"failed", summary.Failed)

	return summary, nil
}

// entryFor converts an endpoint call result into its daily log entry.
func entryFor(result api.Result) dailylog.Entry {
	return dailylog.Entry{
		Timestamp:    result.TimestampISO(),
		Type:         dailylog.EntryTypeAPIData,
		Endpoint:     result.Endpoint,
		URL:          result.URL,
		RecordsCount: result.RecordsCount,
		Status:       string(result.Status),
		Data:         result.Payload,
		Error:        result.Error,
	}
}
