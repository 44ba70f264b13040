// Package vtex talks to the VTEX catalog and checkout APIs with static app
// credentials.
package vtex

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	HeaderAppKey   = "X-VTEX-API-AppKey"
	HeaderAppToken = "X-VTEX-API-AppToken"
)

// Credentials identify the gateway to the upstream API. They are read once at
// startup and never change.
type Credentials struct {
	BaseURL  string
	AppKey   string
	AppToken string
}

// Response is a parsed upstream response.
type Response struct {
	StatusCode int
	Body       any
}

// Client issues authenticated JSON requests. It is safe for concurrent use.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	log        *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds: Credentials{
			BaseURL:  strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/"),
			AppKey:   creds.AppKey,
			AppToken: creds.AppToken,
		},
		httpClient: http.DefaultClient,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized upstream base URL.
func (c *Client) BaseURL() string {
	return c.creds.BaseURL
}

// GetJSON fetches rawURL and returns the decoded body. Any non-2xx status or
// transport failure is returned as *UpstreamError.
func (c *Client) GetJSON(ctx context.Context, rawURL string) (any, error) {
	resp, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// PostJSON sends payload as a JSON body and returns the upstream status with
// the decoded response.
func (c *Client) PostJSON(ctx context.Context, rawURL string, payload any) (Response, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Response{}, &UpstreamError{Method: http.MethodPost, URL: rawURL, Err: err}
	}
	return c.do(ctx, http.MethodPost, rawURL, raw)
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) (Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return Response{}, &UpstreamError{Method: method, URL: rawURL, Err: err}
	}
	req.Header.Set(HeaderAppKey, c.creds.AppKey)
	req.Header.Set(HeaderAppToken, c.creds.AppToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, &UpstreamError{Method: method, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &UpstreamError{Method: method, URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}
	c.log.DebugContext(ctx, "vtex request",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{StatusCode: resp.StatusCode}, &UpstreamError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(raw)), maxErrorBody),
		}
	}

	parsed, err := decode(raw)
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, &UpstreamError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(raw)), maxErrorBody),
			Err:        err,
		}
	}
	return Response{StatusCode: resp.StatusCode, Body: parsed}, nil
}
