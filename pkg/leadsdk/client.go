package leadsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints of the leads API and opens admin
// sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Now is the clock used to judge session expiry. Defaults to time.Now.
	Now func() time.Time
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Now: time.Now,
	}
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest sends a request; a non-nil body is encoded as JSON and token,
// when set, goes in the Authorization header.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a response with the expected status into target, or
// returns an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		if err := parseErrorResponse(resp, bodyBytes); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatusNoContent returns a typed error if the response status is not 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}

// Login exchanges admin credentials for a Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	return c.LoginWithOTP(ctx, username, password, "")
}

// LoginWithOTP is Login for an admin with a TOTP factor enrolled.
func (c *Client) LoginWithOTP(ctx context.Context, username, password, otp string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: username,
		Password: password,
		OTP:      otp,
	})
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token, tok.ExpiresAt), nil
}

// SubmitSimulation posts the public simulation form.
func (c *Client) SubmitSimulation(ctx context.Context, req SimulationRequest) (*Simulation, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/simulations", "", req)
	if err != nil {
		return nil, err
	}

	var sim Simulation
	if err := decodeJSON(resp, &sim, http.StatusCreated); err != nil {
		return nil, err
	}
	return &sim, nil
}

// SubmitApplication posts the public careers form.
func (c *Client) SubmitApplication(ctx context.Context, req ApplicationRequest) (*Application, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/applications", "", req)
	if err != nil {
		return nil, err
	}

	var app Application
	if err := decodeJSON(resp, &app, http.StatusCreated); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetConfig returns the public server configuration.
func (c *Client) GetConfig(ctx context.Context) (*ConfigResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/config", "", nil)
	if err != nil {
		return nil, err
	}

	var cfg ConfigResponse
	if err := decodeJSON(resp, &cfg, http.StatusOK); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready. A degraded service returns
// an *APIError with status 503.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
