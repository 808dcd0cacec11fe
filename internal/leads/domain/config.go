package domain

import "time"

// PublicConfig is the read-only snapshot served by GET /api/config. It is
// built once at startup and never carries secrets.
type PublicConfig struct {
	Service           string
	Version           string
	Env               string
	Issuer            string
	SigningAlg        string
	KeyID             string
	TokenTTL          time.Duration
	RevocationEnabled bool
	OTPRequired       bool
	DatabaseDriver    string
	AdminFeeBps       int
	ConsortiumTypes   []ConsortiumType
	MinTermMonths     int
	MaxTermMonths     int
	StartedAt         time.Time
}
