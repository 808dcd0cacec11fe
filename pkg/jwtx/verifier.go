package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a token and gives back its claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
)

// HS256Verifier validates tokens produced by HS256Signer.
//
// Checks run in a fixed order: structure, expiry, signature, issuer. Expiry is
// judged on the unverified claims, so an expired token is reported as expired
// whatever its signature.
type HS256Verifier struct {
	keys   *KeySet
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

// NewVerifierHS256 creates a verifier over keys. An empty issuer disables the
// issuer check; a nil clock means time.Now.
func NewVerifierHS256(keys *KeySet, issuer string, now func() time.Time) *HS256Verifier {
	if now == nil {
		now = time.Now
	}
	return &HS256Verifier{
		keys:   keys,
		issuer: issuer,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(), // expiry is checked against our own clock
		),
	}
}

// Verify implements Verifier.
func (v *HS256Verifier) Verify(raw string) (Claims, error) {
	// 1. Structure
	var unverified Claims
	var unverifiable error
	if _, _, err := v.parser.ParseUnverified(raw, &unverified); err != nil {
		// An alg with no registered method still decodes its claims, but it
		// can never pass the signature step.
		if !errors.Is(err, jwt.ErrTokenUnverifiable) {
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		unverifiable = fmt.Errorf("%w: %w", ErrInvalidSig, err)
	}
	if unverified.Subject == "" || unverified.ExpiresAt == nil || unverified.IssuedAt == nil {
		return Claims{}, fmt.Errorf("%w: missing sub, iat or exp", ErrMalformed)
	}

	// 2. Expiry
	if err := unverified.ValidateExpiry(v.now()); err != nil {
		return Claims{}, err
	}

	// 3. Signature
	if unverifiable != nil {
		return Claims{}, unverifiable
	}
	var claims Claims
	if _, err := v.parser.ParseWithClaims(raw, &claims, v.keyFunc); err != nil {
		return Claims{}, mapParseError(err)
	}

	// 4. Issuer
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func (v *HS256Verifier) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrAlgMismatch
	}

	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrUnknownKID)
	}

	secret, err := v.keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
	}
	return secret, nil
}

// mapParseError folds jwt library errors into this package's errors. Anything
// that means "we cannot trust these bytes" is reported as ErrInvalidSig.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownKID):
		return fmt.Errorf("%w: %w", ErrInvalidSig, ErrUnknownKID)
	case errors.Is(err, ErrAlgMismatch):
		return fmt.Errorf("%w: %w", ErrInvalidSig, ErrAlgMismatch)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	}
}
