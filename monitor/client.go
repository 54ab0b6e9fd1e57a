package monitor

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the stop-monitor endpoint queried when the
// configuration carries no override.
const DefaultBaseURL = "https://www.wienerlinien.at/ogd_realtime/monitor"

// Fetcher fetches the raw payload for one stop. The network call owns its
// own timeout; callers decide retry policy.
type Fetcher interface {
	FetchStop(stopID string) (string, error)
}

// Client is a simple HTTP client for fetching stop-monitor payloads.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a stop-monitor HTTP client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchStop fetches the raw monitor payload for stopID and returns the
// body as text.
func (c *Client) FetchStop(stopID string) (string, error) {
	q := url.Values{}
	q.Set("stopId", stopID)
	q.Set("activateTrafficInfo", "stoerungkurz")
	reqURL := c.baseURL + "?" + q.Encode()

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", reqURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, reqURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body from %s: %w", reqURL, err)
	}
	return string(body), nil
}
