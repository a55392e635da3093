package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/session"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/tenant"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/toast"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/telemetry"
)

// DefaultTimeout is the fixed per-request ceiling. Exceeding it surfaces as a
// network-class failure; there is no retry and no circuit breaking.
const DefaultTimeout = 30 * time.Second

// Config holds the construction parameters for a domain client
type Config struct {
	// Domain names the backend this client is bound to (e.g. "compensation")
	Domain string
	// BaseURL is the single fixed base address; no discovery, no fallback
	BaseURL string
	// Timeout overrides DefaultTimeout when > 0
	Timeout time.Duration

	Store    session.Store
	Tenants  *tenant.Context
	Notifier toast.Notifier
}

// Client is the shared outbound HTTP core every typed service client wraps.
// Each request runs through the composed chain:
// inject identity -> send -> classify error.
type Client struct {
	domain   string
	baseURL  string
	round    RoundFunc
	requests *telemetry.Counter
	duration *telemetry.Histogram
}

// New creates a client bound to one backend domain
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	send := func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return httpClient.Do(req)
	}

	// Metric creation only fails on a malformed instrument name
	requests, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "portal_backend_requests_total",
		Description: "Outbound backend requests by domain and outcome",
		Unit:        "{request}",
	})
	duration, _ := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "portal_backend_request_duration_seconds",
		Description: "Outbound backend request duration",
		Unit:        "s",
	})

	return &Client{
		domain:  cfg.Domain,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		round: Chain(send,
			InjectIdentity(cfg.Store, cfg.Tenants),
			NormalizeErrors(cfg.Notifier),
		),
		requests: requests,
		duration: duration,
	}
}

// Get issues a GET request and decodes the response body into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	ctx, span := telemetry.StartSpan(ctx, "backend."+c.domain,
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	err := c.doOnce(ctx, method, path, query, body, out)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		if apiErr, ok := err.(*Error); ok {
			outcome = string(apiErr.Kind)
		}
		telemetry.SetSpanError(ctx, err)
	}
	if c.requests != nil {
		c.requests.Inc(ctx,
			attribute.String("domain", c.domain),
			attribute.String("outcome", outcome),
		)
	}
	if c.duration != nil {
		c.duration.Record(ctx, time.Since(start).Seconds(),
			attribute.String("domain", c.domain),
		)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.round(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:       KindDecode,
			StatusCode: resp.StatusCode,
			Message:    MsgGenericError,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}
