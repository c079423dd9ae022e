package service

import (
	"encoding/base64"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
	apperrors "github.com/allisson/cardledger/internal/errors"
)

// aeadNumberCipher stores card numbers as base64(nonce || ciphertext), using the
// card id as associated data.
type aeadNumberCipher struct {
	aead      AEAD
	nonceSize int
}

// NewNumberCipher builds a NumberCipher for alg with the given 32-byte key.
func NewNumberCipher(manager AEADManager, key []byte, alg cryptoDomain.Algorithm) (NumberCipher, error) {
	aead, err := manager.CreateCipher(key, alg)
	if err != nil {
		return nil, err
	}
	// Both supported algorithms use 96-bit nonces.
	return &aeadNumberCipher{aead: aead, nonceSize: 12}, nil
}

// Encrypt encrypts number for the card identified by cardID.
func (c *aeadNumberCipher) Encrypt(cardID uuid.UUID, number string) (string, error) {
	ciphertext, nonce, err := c.aead.Encrypt([]byte(number), cardID[:])
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt card number")
	}

	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt. Any malformed or unauthenticated input yields ErrDecryptionFailed.
func (c *aeadNumberCipher) Decrypt(cardID uuid.UUID, encrypted string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil || len(blob) <= c.nonceSize {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := c.aead.Decrypt(blob[c.nonceSize:], blob[:c.nonceSize], cardID[:])
	if err != nil {
		return "", apperrors.Wrap(cryptoDomain.ErrDecryptionFailed, err.Error())
	}
	defer cryptoDomain.Zero(plaintext)

	return string(plaintext), nil
}
