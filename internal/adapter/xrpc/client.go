// Package xrpc is a small AT Protocol XRPC client covering the calls the
// labeler needs: session management, the labeler service record, Ozone
// moderation events and post reads.
package xrpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	json "github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/likelabeler/internal/config"
)

const (
	headerProxy      = "atproto-proxy"
	labelerServiceID = "#atproto_labeler"
	maxErrorBody     = 64 << 10
)

// Client talks to a PDS on behalf of the labeler account. It is safe for
// concurrent use; the session is refreshed lazily.
type Client struct {
	baseURL    string
	identifier string
	password   string
	labelerDID string
	httpClient *http.Client
	limiter    *rate.Limiter
	clock      clockwork.Clock
	session    atomic.Pointer[session]
	log        *slog.Logger
}

// NewClient creates a Client for the configured PDS. Requests are paced by a
// token bucket of cfg.RequestsPerSecond with cfg.Burst. A nil clock uses
// the real clock.
func NewClient(cfg config.BlueskyConfig, labelerDID string, clock clockwork.Clock, logger *slog.Logger) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.ServiceURL, "/"),
		identifier: cfg.Identifier,
		password:   cfg.Password,
		labelerDID: labelerDID,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		clock:      clock,
		log:        logger.With("adapter", "xrpc"),
	}
}

// Error is a non-rate-limit XRPC failure.
type Error struct {
	Status  int
	Name    string
	Message string
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("xrpc: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("xrpc: status %d: %s: %s", e.Status, e.Name, e.Message)
}

// IsName reports whether err is an *Error with the given XRPC error name.
func IsName(err error, name string) bool {
	var xe *Error
	return errors.As(err, &xe) && xe.Name == name
}

type authMode int

const (
	authNone authMode = iota
	authAccess
	authRefresh
)

type call struct {
	method string
	nsid   string
	query  url.Values
	body   any
	out    any
	auth   authMode
	proxy  bool
}

// invoke runs an authenticated call, refreshing the session once if the
// server reports the access token as expired.
func (c *Client) invoke(ctx context.Context, cl call) error {
	cl.auth = authAccess
	s, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	err = c.do(ctx, cl, s)
	if err == nil || !(IsName(err, "ExpiredToken") || IsName(err, "InvalidToken")) {
		return err
	}

	c.log.DebugContext(ctx, "access token rejected, refreshing", slog.String("nsid", cl.nsid))
	if s, err = c.refresh(ctx, s); err != nil {
		return err
	}
	return c.do(ctx, cl, s)
}

func (c *Client) do(ctx context.Context, cl call, s *session) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("xrpc: %s: wait limiter: %w", cl.nsid, err)
	}

	reqURL := c.baseURL + "/xrpc/" + cl.nsid
	if len(cl.query) > 0 {
		reqURL += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("xrpc: %s: encode body: %w", cl.nsid, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, reqURL, body)
	if err != nil {
		return fmt.Errorf("xrpc: %s: create request: %w", cl.nsid, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch cl.auth {
	case authAccess:
		req.Header.Set("Authorization", "Bearer "+s.accessJwt)
	case authRefresh:
		req.Header.Set("Authorization", "Bearer "+s.refreshJwt)
	}
	if cl.proxy {
		req.Header.Set(headerProxy, c.labelerDID+labelerServiceID)
	}

	c.log.DebugContext(ctx, "xrpc request", slog.String("method", cl.method), slog.String("nsid", cl.nsid))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("xrpc: %s: request failed: %w", cl.nsid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(ctx, cl.nsid, resp)
	}

	if cl.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("xrpc: %s: decode response: %w", cl.nsid, err)
	}
	return nil
}

func (c *Client) decodeError(ctx context.Context, nsid string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		body.Message = strings.TrimSpace(string(raw))
	}

	if isRateLimited(resp.StatusCode, body) {
		rl := rateLimitFromResponse(resp.Header, body)
		c.log.WarnContext(ctx, "xrpc rate limited",
			slog.String("nsid", nsid),
			slog.String("reset_date", rl.ResetDate),
			slog.String("limit", rl.Limit),
			slog.String("policy", rl.Policy),
		)
		return fmt.Errorf("xrpc: %s: %w", nsid, rl)
	}

	return fmt.Errorf("xrpc: %s: %w", nsid, &Error{
		Status:  resp.StatusCode,
		Name:    body.Error,
		Message: body.Message,
	})
}
