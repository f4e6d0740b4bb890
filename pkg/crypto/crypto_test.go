package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	tests := []string{
		"",
		"sk-abc123",
		"org_0123456789abcdef",
		"unicode: déjà vu — 日本語",
		"long " + string(make([]byte, 4096)),
	}
	for _, plaintext := range tests {
		ct, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		got, err := c.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCipher_Deterministic(t *testing.T) {
	// Equality lookup on encrypted access tokens relies on deterministic output.
	c, err := New("test-secret")
	require.NoError(t, err)

	a, err := c.Encrypt("acc_sametoken")
	require.NoError(t, err)
	b, err := c.Encrypt("acc_sametoken")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCipher_SecretLongerThanKey(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = byte('a' + i%26)
	}
	c, err := New(string(long))
	require.NoError(t, err)

	ct, err := c.Encrypt("payload")
	require.NoError(t, err)
	got, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
}

func TestCipher_DecryptMalformed(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	_, err = c.Decrypt("not valid base64!!!")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
