// Package crypto provides symmetric encryption for provider tokens and
// access credentials using a process-wide secret.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecryptionFailed is returned when ciphertext cannot be decrypted with
// the configured secret.
var ErrDecryptionFailed = errors.New("decryption failed")

// Cipher encrypts and decrypts strings with AES-CFB. The key is the process
// secret padded or truncated to 32 bytes; the IV is derived from the key, so
// encryption is deterministic — equal plaintexts produce equal ciphertexts,
// which allows encrypted access tokens to be looked up by equality.
type Cipher struct {
	key []byte
	iv  []byte
}

// New creates a Cipher from the process-wide secret.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("crypto: empty secret")
	}
	key := make([]byte, 32)
	copy(key, []byte(secret))
	sum := sha256.Sum256(key)
	return &Cipher{key: key, iv: sum[:aes.BlockSize]}, nil
}

// Encrypt returns the URL-safe base64 ciphertext of plaintext.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("crypto: creating cipher: %w", err)
	}
	in := []byte(plaintext)
	out := make([]byte, len(in))
	cipher.NewCFBEncrypter(block, c.iv).XORKeyStream(out, in)
	return base64.URLEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Malformed input surfaces as ErrDecryptionFailed.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("crypto: creating cipher: %w", err)
	}
	out := make([]byte, len(raw))
	cipher.NewCFBDecrypter(block, c.iv).XORKeyStream(out, raw)
	return string(out), nil
}
