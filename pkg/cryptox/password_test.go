package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasher_HashFormat(t *testing.T) {
	h := NewHasher("pepper")

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "admin123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "senha-çãõ-密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
			require.Len(t, strings.Split(hash, "$"), 6)

			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHasher_UniqueSalts(t *testing.T) {
	h := NewHasher("pepper")

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, h.Verify("same", a))
	require.NoError(t, h.Verify("same", b))
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher("pepper")
	hash, err := h.Hash("admin123")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong", "Admin123", "admin123 ", "", strings.Repeat("x", 10000)} {
		require.ErrorIs(t, h.Verify(wrong, hash), ErrPasswordMismatch, "password %q", wrong)
	}
}

func TestHasher_PepperIsPartOfTheHash(t *testing.T) {
	hash, err := NewHasher("one").Hash("admin123")
	require.NoError(t, err)

	require.ErrorIs(t, NewHasher("two").Verify("admin123", hash), ErrPasswordMismatch)
}

func TestHasher_InvalidHashFormat(t *testing.T) {
	h := NewHasher("pepper")

	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, h.Verify("x", tt.hash), ErrInvalidHash)
		})
	}
}

func TestHasher_VerifyDummyDoesNotPanic(t *testing.T) {
	h := NewHasher("pepper")
	h.VerifyDummy("anything")
	h.VerifyDummy("again")
}

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]struct{})
	for range 10 {
		p, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, p, 16)
		for _, c := range p {
			require.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'))
		}
		seen[p] = struct{}{}
	}
	require.Len(t, seen, 10)
}

func TestLoadPepper(t *testing.T) {
	t.Run("generates and persists when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "pepper")

		first, err := LoadPepper(path)
		require.NoError(t, err)
		require.NotEmpty(t, first)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		second, err := LoadPepper(path)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("reads existing file and trims whitespace", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pepper")
		require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o600))

		p, err := LoadPepper(path)
		require.NoError(t, err)
		require.Equal(t, "s3cret", p)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pepper")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := LoadPepper(path)
		require.Error(t, err)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := LoadPepper("")
		require.Error(t, err)
	})
}
