package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign access-token claims.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with the current secret of a KeySet.
type HS256Signer struct {
	keys *KeySet
}

// NewSignerHS256 returns a signer bound to keys.
func NewSignerHS256(keys *KeySet) (*HS256Signer, error) {
	if !keys.IsReady() {
		return nil, errors.New("jwtx: key set has no signing secret")
	}
	return &HS256Signer{keys: keys}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (s *HS256Signer) KID() string {
	kid, _ := s.keys.Current()
	return kid
}

// Sign returns the compact JWS for claims with the kid header set.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	kid, secret := s.keys.Current()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = kid
	return t.SignedString(secret)
}
