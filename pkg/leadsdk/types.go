package leadsdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// OTP is the current TOTP code; only needed when the admin has one enrolled.
	OTP string `json:"otp,omitempty"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// Token is the compact bearer token to send in the Authorization header
	Token string `json:"token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	// ExpiresAt is the absolute expiry time
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the caller of a protected request.
type MeResponse struct {
	Subject   string    `json:"subject"`
	TokenID   string    `json:"token_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ============================================================================
// Lead Types
// ============================================================================

// SimulationRequest is the body of POST /api/simulations.
type SimulationRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	ConsortiumType    string `json:"consortium_type"`
	CreditAmountCents int64  `json:"credit_amount_cents"`
	TermMonths        int    `json:"term_months"`
}

// Simulation is a stored consortium quote.
type Simulation struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	ConsortiumType    string    `json:"consortium_type"`
	CreditAmountCents int64     `json:"credit_amount_cents"`
	TermMonths        int       `json:"term_months"`
	AdminFeeBps       int       `json:"admin_fee_bps"`
	InstallmentCents  int64     `json:"installment_cents"`
	CreatedAt         time.Time `json:"created_at"`
}

// ApplicationRequest is the body of POST /api/applications.
type ApplicationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Position  string `json:"position"`
	ResumeURL string `json:"resume_url,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Application is a stored job application.
type Application struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position"`
	ResumeURL string    `json:"resume_url,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOptions selects a page of a newest-first listing. Zero values use the
// server defaults.
type ListOptions struct {
	Limit  int
	Offset int
}

// SimulationList is one page of simulations.
type SimulationList struct {
	Items  []Simulation `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// ApplicationList is one page of job applications.
type ApplicationList struct {
	Items  []Application `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ============================================================================
// Config & Health Types
// ============================================================================

// ConfigResponse is the public, secret-free view of the server configuration.
type ConfigResponse struct {
	Service           string    `json:"service"`
	Version           string    `json:"version"`
	Env               string    `json:"env"`
	Issuer            string    `json:"issuer"`
	SigningAlg        string    `json:"signing_alg"`
	KeyID             string    `json:"key_id"`
	TokenTTLSeconds   int       `json:"token_ttl_seconds"`
	RevocationEnabled bool      `json:"revocation_enabled"`
	OTPRequired       bool      `json:"otp_required"`
	DatabaseDriver    string    `json:"database_driver"`
	AdminFeeBps       int       `json:"admin_fee_bps"`
	ConsortiumTypes   []string  `json:"consortium_types"`
	MinTermMonths     int       `json:"min_term_months"`
	MaxTermMonths     int       `json:"max_term_months"`
	StartedAt         time.Time `json:"started_at"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status ("ok" or "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the store connection status
	Database string `json:"database"`

	// Signer indicates whether a token signing key is loaded
	Signer string `json:"signer"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
