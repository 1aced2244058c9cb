package xrpc

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

// refreshSkew is how long before access token expiry a refresh is attempted.
const refreshSkew = 2 * time.Minute

type session struct {
	did        string
	accessJwt  string
	refreshJwt string
	accessExp  time.Time // zero when the token carries no readable exp
}

func newSession(out sessionResponse) *session {
	return &session{
		did:        out.DID,
		accessJwt:  out.AccessJwt,
		refreshJwt: out.RefreshJwt,
		accessExp:  tokenExpiry(out.AccessJwt),
	}
}

func (s *session) expiresSoon(now time.Time) bool {
	return !s.accessExp.IsZero() && now.Add(refreshSkew).After(s.accessExp)
}

// tokenExpiry reads the exp claim without verifying the signature; the PDS
// that issued the token is the one that verifies it.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil && !errors.Is(err, jwt.ErrTokenUnverifiable) {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// Login creates a new session with the configured credentials. Rate limiting
// is reported as a wrapped *domain.RateLimitError.
func (c *Client) Login(ctx context.Context) error {
	var out sessionResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		nsid:   "com.atproto.server.createSession",
		body:   createSessionRequest{Identifier: c.identifier, Password: c.password},
		out:    &out,
		auth:   authNone,
	}, nil)
	if err != nil {
		return err
	}

	c.session.Store(newSession(out))
	c.log.InfoContext(ctx, "session created", slog.String("did", out.DID), slog.String("handle", out.Handle))
	return nil
}

// DID returns the DID of the logged-in account, or "" before Login.
func (c *Client) DID() string {
	if s := c.session.Load(); s != nil {
		return s.did
	}
	return ""
}

func (c *Client) ensureSession(ctx context.Context) (*session, error) {
	s := c.session.Load()
	if s == nil {
		if err := c.Login(ctx); err != nil {
			return nil, err
		}
		return c.session.Load(), nil
	}
	if s.expiresSoon(c.clock.Now()) {
		return c.refresh(ctx, s)
	}
	return s, nil
}

// refresh exchanges the refresh token of stale for a new session, falling
// back to a full login. Concurrent refreshes are tolerated: the last stored
// session wins and every one of them is valid.
func (c *Client) refresh(ctx context.Context, stale *session) (*session, error) {
	if cur := c.session.Load(); cur != nil && cur != stale && !cur.expiresSoon(c.clock.Now()) {
		return cur, nil
	}

	var out sessionResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		nsid:   "com.atproto.server.refreshSession",
		out:    &out,
		auth:   authRefresh,
	}, stale)
	if err == nil {
		s := newSession(out)
		c.session.Store(s)
		c.log.DebugContext(ctx, "session refreshed", slog.String("did", s.did))
		return s, nil
	}

	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		return nil, err
	}

	c.log.WarnContext(ctx, "session refresh failed, logging in again", slog.String("error", err.Error()))
	if err := c.Login(ctx); err != nil {
		return nil, err
	}
	return c.session.Load(), nil
}
