// Package gateway is the single configured HTTP client every domain service
// goes through. It attaches the bearer credential to outgoing requests and
// intercepts 401 responses, wiping the stored credential pair and notifying
// the session, except for public endpoints where anonymous browsing must not
// be disrupted.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medibook-portals/internal/storage"

	"github.com/sirupsen/logrus"
)

type Config struct {
	BaseURL string
	Timeout time.Duration // zero means the transport default

	// PublicPaths is the allowlist of endpoints whose 401 responses pass
	// through untouched. Matching is by substring against the request path,
	// so "/doctors/" also covers nested sub-resources such as
	// "/doctors/3/available_slots/".
	PublicPaths []string
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	store       storage.TokenStore
	log         *logrus.Logger
	publicPaths []string

	onUnauthorized func()
}

func New(cfg Config, store storage.TokenStore, log *logrus.Logger) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("gateway: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("gateway: invalid base URL %q: %w", cfg.BaseURL, err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		baseURL:     base,
		httpClient:  httpClient,
		store:       store,
		log:         log,
		publicPaths: cfg.PublicPaths,
	}, nil
}

// SetUnauthorizedHook registers the callback run after a non-public 401 has
// wiped the stored credentials. The session uses it to drop its identity and
// the portal to force navigation back to the login screen.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Access(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !c.isPublic(path) {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Warn("Session expired, clearing stored credentials")
		if err := c.store.Clear(); err != nil {
			c.log.Warnf("Failed to clear credential store: %+v", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return newAPIError(resp.StatusCode, respBody)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("gateway: decode %s %s response: %w", method, path, err)
		}
	}

	return nil
}

func (c *Client) isPublic(path string) bool {
	for _, p := range c.publicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
