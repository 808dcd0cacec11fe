package jwtx

import (
	"errors"
	"sync"

	"github.com/aussiebroadwan/leads/pkg/cryptox"
)

// MinSecretLength is the shortest HMAC secret accepted, matching the SHA-256 block output.
const MinSecretLength = 32

var (
	ErrNoKey          = errors.New("jwtx: key not found")
	ErrSecretTooShort = errors.New("jwtx: signing secret must be at least 32 bytes")
)

// KeySet holds the HMAC secrets tokens are signed and verified with. The
// current secret signs; every secret in the set verifies, so a previous secret
// keeps outstanding tokens valid across a rotation.
type KeySet struct {
	mu      sync.RWMutex
	current string
	secrets map[string][]byte // kid: secret
}

// NewKeySet builds a key set whose signing key is current. Empty previous
// secrets are skipped.
func NewKeySet(current []byte, previous ...[]byte) (*KeySet, error) {
	if len(current) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	ks := &KeySet{secrets: make(map[string][]byte, 1+len(previous))}
	ks.current = ks.add(current)

	for _, p := range previous {
		if len(p) == 0 {
			continue
		}
		if len(p) < MinSecretLength {
			return nil, ErrSecretTooShort
		}
		ks.add(p)
	}
	return ks, nil
}

func (k *KeySet) add(secret []byte) string {
	kid := KeyID(secret)
	k.secrets[kid] = append([]byte(nil), secret...)
	return kid
}

// KeyID derives a short public identifier from a secret. It is a truncated
// SHA-256, so it reveals nothing useful about the secret itself.
func KeyID(secret []byte) string {
	return "hs-" + cryptox.Fingerprint(secret)[:12]
}

// Current returns the kid and secret used for signing.
func (k *KeySet) Current() (string, []byte) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.current, k.secrets[k.current]
}

// Get returns the secret for kid.
func (k *KeySet) Get(kid string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if s, ok := k.secrets[kid]; ok {
		return s, nil
	}
	return nil, ErrNoKey
}

// Len reports how many secrets can verify tokens.
func (k *KeySet) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.secrets)
}

// IsReady reports whether a signing secret is loaded.
func (k *KeySet) IsReady() bool {
	if k == nil {
		return false
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.secrets[k.current]) >= MinSecretLength
}
