package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealer(t *testing.T) {
	s, err := NewSealer("totp", "pepper-material")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		sealed, err := s.Seal("JBSWY3DPEHPK3PXP")
		require.NoError(t, err)
		require.True(t, IsSealed(sealed))
		require.NotContains(t, sealed, "JBSWY3DPEHPK3PXP")

		opened, err := s.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, "JBSWY3DPEHPK3PXP", opened)
	})

	t.Run("random nonce per value", func(t *testing.T) {
		a, err := s.Seal("secret")
		require.NoError(t, err)
		b, err := s.Seal("secret")
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("empty and plaintext pass through", func(t *testing.T) {
		sealed, err := s.Seal("")
		require.NoError(t, err)
		require.Empty(t, sealed)

		opened, err := s.Open("JBSWY3DPEHPK3PXP")
		require.NoError(t, err)
		require.Equal(t, "JBSWY3DPEHPK3PXP", opened)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		sealed, err := s.Seal("secret")
		require.NoError(t, err)

		last := sealed[len(sealed)-2]
		repl := byte('A')
		if last == 'A' {
			repl = 'B'
		}
		tampered := sealed[:len(sealed)-2] + string(repl) + sealed[len(sealed)-1:]

		_, err = s.Open(tampered)
		require.ErrorIs(t, err, ErrSealed)
	})

	t.Run("other key material cannot open", func(t *testing.T) {
		other, err := NewSealer("totp", "different-pepper")
		require.NoError(t, err)

		sealed, err := s.Seal("secret")
		require.NoError(t, err)
		_, err = other.Open(sealed)
		require.ErrorIs(t, err, ErrSealed)
	})

	t.Run("truncated value", func(t *testing.T) {
		_, err := s.Open(sealedPrefix + "AAAA")
		require.ErrorIs(t, err, ErrSealed)
	})

	t.Run("nil sealer", func(t *testing.T) {
		var none *Sealer
		v, err := none.Seal("plain")
		require.NoError(t, err)
		require.Equal(t, "plain", v)

		sealed, err := s.Seal("secret")
		require.NoError(t, err)
		_, err = none.Open(sealed)
		require.ErrorIs(t, err, ErrSealed)
	})

	t.Run("empty key material", func(t *testing.T) {
		_, err := NewSealer("totp", "")
		require.Error(t, err)
		require.False(t, IsSealed(strings.Repeat("x", 10)))
	})
}
