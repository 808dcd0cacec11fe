package domain

import "time"

// Credential is the stored admin login. TOTPSecret is empty when the
// second factor is not enrolled.
type Credential struct {
	ID           string
	Username     string
	PasswordHash string
	TOTPSecret   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequiresOTP reports whether login needs a TOTP code.
func (c *Credential) RequiresOTP() bool {
	return c.TOTPSecret != ""
}
