// Package lookup wraps the external services behind the bot's one-shot lookup
// commands. Every operation performs exactly one HTTP call and returns a
// formatted reply or an error; callers turn errors into a fixed apology and
// never let them escape past the dispatcher.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tg_toolkit_bot/internal/logging"
)

const (
	requestTimeout = 10 * time.Second

	// maxBodySize bounds untrusted response bodies.
	maxBodySize = 1 << 20
)

// ErrWeatherNotConfigured is returned when no OpenWeatherMap key is set.
var ErrWeatherNotConfigured = fmt.Errorf("weather api key is not configured")

// Client performs the external lookups. Endpoint bases are fields so tests
// can point them at a local server.
type Client struct {
	http       *http.Client
	logger     *logrus.Entry
	weatherKey string

	binBase       string
	ipBase        string
	githubBase    string
	weatherBase   string
	rdapBase      string
	shortenBase   string
	pasteBase     string
	translateBase string
	oembedBase    string
	ttsBase       string
}

// NewClient constructs a Client with the default public endpoints. The
// weather key may be empty; only the weather lookup degrades.
func NewClient(weatherKey string, logger *logrus.Entry) *Client {
	if logger == nil {
		logger = logging.Logger()
	}

	return &Client{
		http:       &http.Client{Timeout: requestTimeout},
		logger:     logger,
		weatherKey: weatherKey,

		binBase:       "https://lookup.binlist.net",
		ipBase:        "http://ip-api.com",
		githubBase:    "https://api.github.com",
		weatherBase:   "http://api.openweathermap.org",
		rdapBase:      "https://rdap.org",
		shortenBase:   "http://tinyurl.com",
		pasteBase:     "https://hastebin.com",
		translateBase: "https://translate.googleapis.com",
		oembedBase:    "https://www.youtube.com",
		ttsBase:       "https://translate.google.com",
	}
}

// WeatherConfigured reports whether the weather lookup can be served.
func (c *Client) WeatherConfigured() bool {
	return c != nil && c.weatherKey != ""
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}

	return nil
}

// get issues a GET and returns the raw body for 2xx responses.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", req.URL.Host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", req.URL.Host, err)
	}

	c.logger.WithFields(logging.Fields{
		"event":       "external_lookup",
		"host":        req.URL.Host,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("external lookup completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, fmt.Errorf("%s responded with status %d", req.URL.Host, resp.StatusCode)
	}

	return body, nil
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
