package network

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ClientFactory creates HTTP clients that route through an optional proxy.
type ClientFactory struct {
	proxyURL string
}

// NewClientFactory creates a factory. An empty proxyURL means direct connections.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: strings.TrimSpace(proxyURL)}
}

// NewHTTPClient creates an http.Client with the configured proxy and timeout.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: f.NewHTTPTransport(),
	}
}

// NewHTTPTransport creates an http.Transport with proxy configuration.
// http, https and socks5 proxy URLs are supported; an unparsable URL is ignored.
func (f *ClientFactory) NewHTTPTransport() *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil

	if f.proxyURL == "" {
		return transport
	}
	parsed, err := url.Parse(f.proxyURL)
	if err != nil || parsed.Host == "" {
		return transport
	}
	switch parsed.Scheme {
	case "http", "https", "socks5", "socks5h":
		transport.Proxy = http.ProxyURL(parsed)
	}
	return transport
}

// ProxyURL returns the configured proxy URL.
func (f *ClientFactory) ProxyURL() string {
	return f.proxyURL
}

// TestProxy checks that testURL is reachable through the configured proxy.
// A 5xx reply counts as unreachable.
func (f *ClientFactory) TestProxy(ctx context.Context, testURL string) error {
	client := f.NewHTTPClient(10 * time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, testURL, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("proxy test: %s returned %d", ExtractHost(testURL), resp.StatusCode)
	}
	return nil
}

// ExtractHost returns the host (with port) of rawURL, or "" when it has none.
func ExtractHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
