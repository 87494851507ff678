package ergast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Ergast Formula 1 API.
const DefaultBaseURL = "https://ergast.com/api/f1"

// Client issues read-only requests against the Ergast API. Every call is a
// single attempt bounded by the configured timeout; there is no retry and no
// caching.
type Client struct {
	baseURL    string
	host       string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	host := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return &Client{
		baseURL: baseURL,
		host:    host,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch GETs {base}/{endpoint}.json with the given query parameters and
// returns the parsed body unmodified. The client owns the ".json" suffix;
// callers pass bare paths such as "seasons" or "2024/5/results".
//
// A non-200 answer yields *UpstreamError, a transport failure yields
// *UnavailableError.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	reqURL := fmt.Sprintf("%s/%s.json", c.baseURL, endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return data, nil
}
