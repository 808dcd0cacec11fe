package leadsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// Session is an authenticated admin session. It is safe for concurrent use.
// Tokens cannot be refreshed; once expired every call returns
// ErrSessionExpired without contacting the server.
type Session struct {
	client *Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// NewSession wraps an existing bearer token.
func (c *Client) NewSession(token string, expiresAt time.Time) *Session {
	return &Session{client: c, token: token, expiresAt: expiresAt}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt returns the token expiry.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || s.client.now().After(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

func (s *Session) do(ctx context.Context, method, path string) (*http.Response, error) {
	token, err := s.validToken()
	if err != nil {
		return nil, err
	}
	return s.client.doRequest(ctx, method, path, token, nil)
}

func (s *Session) get(ctx context.Context, path string, target any) error {
	resp, err := s.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// Me returns the principal the server sees for this session.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var me MeResponse
	if err := s.get(ctx, "/api/auth/me", &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// Logout ends the session. When the server keeps a denylist the token stops
// working immediately; either way this Session is cleared.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/auth/logout")
	if err != nil {
		return err
	}
	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// ListSimulations returns one page of simulations, newest first.
func (s *Session) ListSimulations(ctx context.Context, opts ListOptions) (*SimulationList, error) {
	var list SimulationList
	if err := s.get(ctx, "/api/simulations"+opts.query(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetSimulation returns one simulation by id.
func (s *Session) GetSimulation(ctx context.Context, id string) (*Simulation, error) {
	var sim Simulation
	if err := s.get(ctx, "/api/simulations/"+url.PathEscape(id), &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}

// ListApplications returns one page of job applications, newest first.
func (s *Session) ListApplications(ctx context.Context, opts ListOptions) (*ApplicationList, error) {
	var list ApplicationList
	if err := s.get(ctx, "/api/applications"+opts.query(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetApplication returns one job application by id.
func (s *Session) GetApplication(ctx context.Context, id string) (*Application, error) {
	var app Application
	if err := s.get(ctx, "/api/applications/"+url.PathEscape(id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (o ListOptions) query() string {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
