package domain

import "time"

// TokenType is the scheme clients use in the Authorization header.
const TokenType = "Bearer"

// IssuedToken is what a successful login returns.
type IssuedToken struct {
	Token     string
	TokenType string
	TokenID   string
	ExpiresIn time.Duration
	ExpiresAt time.Time
}

// Principal is the caller a validated token speaks for. It is rebuilt on
// every request and never stored.
type Principal struct {
	Subject   string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (p Principal) SubjectID() string { return p.Subject }

// RevokedToken is a denylist entry. Entries are pruned once ExpiresAt passes
// since the token would be rejected as expired anyway.
type RevokedToken struct {
	JTI       string
	Subject   string
	ExpiresAt time.Time
	RevokedAt time.Time
}
