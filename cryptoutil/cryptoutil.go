// Package cryptoutil is a thin wrapper over platform cryptographic primitives:
// salted hashing and key derivation via Argon2id, and authenticated encryption
// via AES-GCM. Every operation takes a caller-supplied random salt of at least
// MinSaltLen bytes; the package never invents key material silently.
package cryptoutil

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
)

// MinSaltLen is the minimum accepted salt length in bytes.
const MinSaltLen = 16

// KeyLen is the length of derived keys and digests in bytes.
const KeyLen = 32

// Argon2id parameters. Tuned for interactive use, matching the RFC 9106
// second recommended option.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var (
	ErrSaltTooShort      = errors.New("cryptoutil: salt must be at least 16 bytes")
	ErrEncryptionFailed  = errors.New("cryptoutil: encryption failed")
	ErrDecryptionFailed  = errors.New("cryptoutil: decryption failed")
	ErrInvalidCiphertext = errors.New("cryptoutil: invalid ciphertext")
)

// NewSalt returns n random bytes from the platform CSPRNG. Values of n below
// MinSaltLen are raised to MinSaltLen.
func NewSalt(n int) ([]byte, error) {
	if n < MinSaltLen {
		n = MinSaltLen
	}
	salt := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey stretches secret with salt into a KeyLen-byte key using Argon2id.
// The same secret and salt always derive the same key.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	if len(salt) < MinSaltLen {
		return nil, ErrSaltTooShort
	}
	return argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, KeyLen), nil
}

// Hash returns a fixed-size digest of data bound to salt. Store digest and
// salt together; Verify recomputes from the same pair.
func Hash(data, salt []byte) ([]byte, error) {
	return DeriveKey(data, salt)
}

// Verify reports whether data hashes to sum under salt. The comparison runs in
// constant time.
func Verify(data, salt, sum []byte) (bool, error) {
	h, err := Hash(data, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(h, sum) == 1, nil
}

// Encrypt seals data with a key derived from secret and salt using AES-GCM.
// Returns ciphertext in format: nonce + encrypted data + tag.
func Encrypt(secret, salt, data []byte) ([]byte, error) {
	key, err := DeriveKey(secret, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return aesGCM.Seal(nonce, nonce, data, nil), nil
}

// Decrypt opens ciphertext produced by Encrypt with the same secret and salt.
// Expects ciphertext in format: nonce + encrypted data + tag.
func Decrypt(secret, salt, ciphertext []byte) ([]byte, error) {
	key, err := DeriveKey(secret, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrInvalidCiphertext
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
