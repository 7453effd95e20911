// Package fetcher downloads the upstream Mozilla CA bundle used as the
// comparison baseline for staleness checks against the embedded bundle.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const (
	// DefaultUpstreamURL is the default URL for the Mozilla CA bundle.
	DefaultUpstreamURL = "https://curl.se/ca/cacert.pem"
)

// HTTPClient is an interface for making HTTP requests.
// This interface allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher handles downloading upstream CA bundles.
type Fetcher struct {
	client HTTPClient
}

// NewFetcher creates a new Fetcher with the given HTTP client.
// If client is nil, uses http.DefaultClient.
func NewFetcher(client HTTPClient) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client: client,
	}
}

// FetchBundle downloads the upstream CA bundle from the specified URL.
// The context can be used to cancel the download or set a timeout.
func (f *Fetcher) FetchBundle(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Set User-Agent to identify ourselves
	req.Header.Set("User-Agent", "rootanchor/1.0 (trust bundle staleness check)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download bundle: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("downloaded bundle is empty")
	}

	return data, nil
}
