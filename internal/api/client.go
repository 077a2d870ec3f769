// Package api provides the HTTP client for the agent server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/agentdash/internal/errors"
	"github.com/diogo/agentdash/internal/models"
)

// HTTPDoer is the part of an HTTP client the API needs. tls_client.HttpClient
// satisfies it.
type HTTPDoer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// ClientInterface is what the dashboard and the commands depend on.
type ClientInterface interface {
	Health(ctx context.Context) (*models.HealthReport, error)
	Chat(ctx context.Context, message string) (*models.ChatReply, error)
	ListFiles(ctx context.Context) ([]models.FileSummary, error)
	GetFile(ctx context.Context, name string) (*models.FileContent, error)
	DeleteFile(ctx context.Context, name string) (*models.DeleteResult, error)
	BaseURL() string
}

var _ ClientInterface = (*Client)(nil)

// Client talks to the agent server's REST API
type Client struct {
	httpClient HTTPDoer
	baseURL    string
	timeout    time.Duration
	logger     *log.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the default tls-client transport
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid server URL %q: must start with http:// or https://", baseURL)
	}

	client := &Client{
		baseURL: baseURL,
		logger:  log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		httpClient, err := newTLSClient()
		if err != nil {
			return nil, err
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// newTLSClient builds the default transport. Timeouts are enforced through
// the request context, so the transport itself gets a generous ceiling.
func newTLSClient() (tls_client.HttpClient, error) {
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(0),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithNotFollowRedirects(),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return httpClient, nil
}

// BaseURL returns the server base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response is a fully read HTTP response
type response struct {
	status int
	body   []byte
}

// do performs a request and reads the whole body. Transport failures become
// NetworkError, an expired deadline becomes TimeoutError.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := fhttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("%s %s failed after %s: %v", method, path, time.Since(start).Round(time.Millisecond), err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(path)
		}
		return nil, apierrors.NewNetworkError(path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(path)
		}
		return nil, apierrors.NewNetworkError(path, err)
	}

	c.logger.Printf("%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return &response{status: resp.StatusCode, body: data}, nil
}
