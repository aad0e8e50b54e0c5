// Package api is the implementation of the endpoint client component.
// The endpoint client issues one signed GET per endpoint and converts every
// outcome, network error included, into a Result value. It never retries:
// the next scheduler tick is the retry mechanism.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/greenbier/sportsfetch/internal/constants"
	"github.com/greenbier/sportsfetch/internal/easterntime"
	"github.com/greenbier/sportsfetch/internal/signer"
)

// Status is the outcome of a single endpoint call.
type Status string

const (
	// StatusSuccess marks a parseable 2xx response with a zero envelope code.
	StatusSuccess Status = "success"
	// StatusFailure marks any other outcome.
	StatusFailure Status = "failure"
)

// Result is the outcome record of a single endpoint call within one run.
// It is created once per endpoint per run and never mutated afterwards.
type Result struct {
	Endpoint     string
	URL          string
	Time         time.Time
	Status       Status
	RecordsCount int
	Payload      map[string]any // nil on failure.
	Error        string         // set iff Status is StatusFailure.
}

// Succeeded reports whether the call succeeded.
func (r Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// TimestampISO returns the call time as an Eastern ISO-8601 timestamp.
func (r Result) TimestampISO() string {
	return easterntime.ISO8601(r.Time)
}

type timeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

// Config represents the client specific data needed to call the API.
type Config struct {
	BaseURL string
	User    string
	Secret  string
	Timeout time.Duration
}

// Sanitize sets defaults and checks that the Config is properly configured.
func (c *Config) Sanitize(l *slog.Logger) error {
	if c.BaseURL == "" {
		c.BaseURL = constants.DefaultBaseURL
		l.Info("No base URL provided, defaulting to", "baseURL", c.BaseURL)
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL %q: %v", c.BaseURL, err)
	}
	if c.Timeout <= 0 {
		c.Timeout = constants.DefaultRequestTimeout
	}
	if c.User == "" || c.Secret == "" {
		return errors.New("missing API credentials")
	}
	return nil
}

type options struct {
	timeProvider timeProvider
}

var defaultOptions = options{
	timeProvider: realTimeProvider{},
}

// Options represents an optional function to override Client default values.
type Options func(*options)

// Client calls the remote sports data API.
type Client struct {
	http    *http.Client
	baseURL string
	user    string
	secret  string

	timeProvider timeProvider

	log *slog.Logger
}

// New returns a new Client.
// Sanitize the config before use, but Sanitize may be called beforehand safely.
func New(l *slog.Logger, c Config, args ...Options) (*Client, error) {
	if err := c.Sanitize(l); err != nil {
		return nil, err
	}

	opts := defaultOptions
	for _, opt := range args {
		opt(&opts)
	}

	return &Client{
		http:         &http.Client{Timeout: c.Timeout},
		baseURL:      c.BaseURL,
		user:         c.User,
		secret:       c.Secret,
		timeProvider: opts.timeProvider,
		log:          l,
	}, nil
}

// Fetch performs one signed GET against the endpoint and returns its Result.
// Failures of any kind (network, status, body, envelope) are folded into the
// Result rather than returned, so a caller can always record the outcome.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint) Result {
	now := c.timeProvider.Now()
	reqURL := c.baseURL + "/" + endpoint.Path

	result := Result{
		Endpoint: endpoint.Name,
		URL:      reqURL,
		Time:     now,
		Status:   StatusFailure,
	}

	c.log.Debug("Fetching endpoint", "endpoint", endpoint.Name, "url", reqURL)

	payload, err := c.get(ctx, reqURL, now)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Status = StatusSuccess
	result.Payload = payload
	result.RecordsCount = countRecords(payload)
	return result
}

// get issues the signed request and validates the response envelope.
func (c *Client) get(ctx context.Context, reqURL string, now time.Time) (map[string]any, error) {
	params := url.Values{}
	params.Set("user", c.user)
	params.Set("secret", c.secret)
	params.Set("timestamp", strconv.FormatInt(now.Unix(), 10))
	params.Set("sign", signer.Sign(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %v", err)
	}

	if err := checkEnvelope(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// checkEnvelope validates the API response envelope.
// The remote API reports application errors through a numeric code field with
// HTTP 200, so a 2xx response is not enough to call the fetch a success.
func checkEnvelope(payload map[string]any) error {
	rawCode, ok := payload["code"]
	if !ok {
		return errors.New("invalid API response format - missing status code")
	}

	code, ok := rawCode.(float64)
	if !ok {
		return fmt.Errorf("invalid API response format - non-numeric status code %v", rawCode)
	}

	switch int(code) {
	case 0:
		return nil
	case 404:
		return errors.New("resource does not exist")
	case 9999:
		return errors.New("unknown API error")
	default:
		msg := "unknown error"
		if m, ok := payload["message"].(string); ok && m != "" {
			msg = m
		}
		return fmt.Errorf("API error: %s", msg)
	}
}

// countRecords returns the number of records in a successful payload.
// A results list counts its elements, a single results object counts as one,
// and an envelope without results carries no records.
func countRecords(payload map[string]any) int {
	results, ok := payload["results"]
	if !ok {
		return 0
	}

	switch r := results.(type) {
	case []any:
		return len(r)
	case nil:
		return 0
	default:
		return 1
	}
}
