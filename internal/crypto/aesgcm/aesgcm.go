package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"docvault/internal/models"
	"fmt"
)

const pkg = "aesgcm/"

const (
	KeySize   = 32
	NonceSize = 12
)

// NewKey returns a fresh random 256-bit key.
func NewKey() ([]byte, error) {
	op := pkg + "NewKey"

	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return key, nil
}

// Encrypt seals plaintext with AES-256-GCM under a random nonce.
// The returned ciphertext includes the authentication tag.
func Encrypt(plaintext, key []byte) (nonce, ciphertext []byte, err error) {
	op := pkg + "Encrypt"

	aead, err := newAEAD(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt opens ciphertext and verifies the authentication tag. Any
// mismatch fails closed with models.ErrDecryptionFailed.
func Decrypt(nonce, ciphertext, key []byte) ([]byte, error) {
	op := pkg + "Decrypt"

	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%s: %w", op, models.ErrDecryptionFailed)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrDecryptionFailed)
	}

	return plaintext, nil
}

// SelfTest round-trips a probe message through Encrypt/Decrypt. It backs
// the cryptography_available flag on the health endpoint.
func SelfTest() error {
	op := pkg + "SelfTest"

	key, err := NewKey()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	probe := []byte("docvault crypto self-test")

	nonce, ciphertext, err := Encrypt(probe, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	plaintext, err := Decrypt(nonce, ciphertext, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if string(plaintext) != string(probe) {
		return fmt.Errorf("%s: round-trip mismatch", op)
	}

	return nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
