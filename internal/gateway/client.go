// Package gateway wraps the remote commerce REST API behind a single HTTP
// client: base URL, fixed timeout, bearer-token decoration and response
// classification live here so no caller touches transport concerns.
//
// Authentication expiry is modeled as a tagged outcome (ErrAuthExpired)
// rather than an implicit navigation buried in transport code: the client
// clears the session store and the caller reacts to the error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// ErrAuthExpired is returned when an authenticated call answers 401. The
// session has already been cleared by the time callers see it; their only
// job is to send the user to /login.
var ErrAuthExpired = &domain.Error{Code: domain.EUNAUTHORIZED, Message: "Session expired, sign in again"}

// SessionClearer is the slice of the session store the client needs to revoke
// a session whose token the backend rejected.
type SessionClearer interface {
	Clear(ctx context.Context, token string) error
}

// Config holds client settings.
type Config struct {
	// BaseURL is the root of the commerce REST API.
	BaseURL string

	// Timeout is the fixed per-request timeout. No retry, no backoff;
	// expiry surfaces as a network error for the user to retry manually.
	Timeout time.Duration

	// BreakerEnabled wraps backend calls in a circuit breaker. An open
	// breaker is reported as a network error without issuing the request.
	BreakerEnabled bool
}

// Client is the API gateway client. All backend traffic flows through Do.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionClearer
	breaker  *gobreaker.CircuitBreaker[*backendResponse]
	metrics  *Metrics
	logger   *slog.Logger
}

type backendResponse struct {
	status int
	body   []byte
}

// New creates a gateway client.
func New(cfg Config, sessions SessionClearer, metrics *Metrics, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}

	if cfg.BreakerEnabled {
		c.breaker = gobreaker.NewCircuitBreaker[*backendResponse](gobreaker.Settings{
			Name:    "commerce-backend",
			Timeout: 15 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("backend breaker state change", "from", from.String(), "to", to.String())
				if to == gobreaker.StateOpen {
					metrics.breakerOpened()
				}
			},
		})
	}

	return c
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, op, path string, out any) error {
	return c.Do(ctx, op, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, op, path string, body, out any) error {
	return c.Do(ctx, op, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, op, path string, body, out any) error {
	return c.Do(ctx, op, http.MethodPut, path, body, out)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, op, path string, body, out any) error {
	return c.Do(ctx, op, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, op, path string, out any) error {
	return c.Do(ctx, op, http.MethodDelete, path, nil, out)
}

// Do issues one request against the backend, decorating it with the bearer
// token from the context session, and decodes a 2xx JSON body into out.
// Non-2xx statuses come back as domain errors; op names the calling
// operation for logs, metrics and error wrapping.
func (c *Client) Do(ctx context.Context, op, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.Internal(err, op, "failed to encode request")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return domain.Internal(err, op, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := domain.TokenFromContext(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.send(req)
	if err != nil {
		c.metrics.observe(op, method, "network", time.Since(start))
		c.logger.Warn("backend request failed",
			"op", op, "method", method, "path", path, "error", err)
		return domain.Network(err, op, "Could not reach the store service. Try again shortly.")
	}
	c.metrics.observe(op, method, statusClass(resp.status), time.Since(start))

	if resp.status >= 200 && resp.status < 300 {
		if out != nil && len(resp.body) > 0 {
			if err := json.Unmarshal(resp.body, out); err != nil {
				return domain.Internal(err, op, "failed to decode response")
			}
		}
		return nil
	}

	return c.statusError(ctx, op, path, token, resp)
}

// send executes the request through the breaker when one is configured.
// Transport failures count against the breaker; HTTP error statuses do not,
// since the backend did answer.
func (c *Client) send(req *http.Request) (*backendResponse, error) {
	call := func() (*backendResponse, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &backendResponse{status: resp.StatusCode, body: raw}, nil
	}

	if c.breaker == nil {
		return call()
	}
	return c.breaker.Execute(call)
}

// statusError maps a non-2xx backend answer to a domain error. A 401 outside
// the login call revokes the session before the tagged outcome is returned,
// so no queued request can reuse the rejected token.
func (c *Client) statusError(ctx context.Context, op, path, token string, resp *backendResponse) error {
	message := backendMessage(resp.body)

	switch {
	case resp.status == http.StatusUnauthorized:
		if path == "/login" {
			if message == "" {
				message = "Invalid credentials"
			}
			return domain.Unauthorized(op, message)
		}
		if token != "" && c.sessions != nil {
			if err := c.sessions.Clear(ctx, token); err != nil {
				c.logger.Error("failed to clear expired session", "op", op, "error", err)
			}
		}
		return ErrAuthExpired

	case resp.status == http.StatusForbidden:
		if message == "" {
			message = "You do not have permission for this action"
		}
		return domain.Forbidden(op, message)

	case resp.status == http.StatusNotFound:
		if message == "" {
			message = "Resource not found"
		}
		return &domain.Error{Code: domain.ENOTFOUND, Op: op, Message: message}

	case resp.status == http.StatusConflict:
		return &domain.Error{Code: domain.ECONFLICT, Op: op, Message: message}

	case resp.status >= 400 && resp.status < 500:
		if message == "" {
			message = "The store service rejected the request"
		}
		return domain.Invalid(op, message)

	default:
		return domain.Internal(
			fmt.Errorf("backend answered %d", resp.status),
			op, "The store service failed, try again later")
	}
}

// backendMessage extracts the human-readable message the backend puts in
// error bodies, either {"message": ...} or {"error": ...}.
func backendMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
