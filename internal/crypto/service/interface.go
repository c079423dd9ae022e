// Package service provides the AEAD ciphers and KMS access used to protect card numbers at rest.
package service

import (
	"context"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// NumberCipher encrypts and decrypts card numbers. The ciphertext is bound to the
// card id, so a value copied onto another row fails to decrypt.
type NumberCipher interface {
	Encrypt(cardID uuid.UUID, number string) (string, error)
	Decrypt(cardID uuid.UUID, encrypted string) (string, error)
}

// KMSService opens keepers for KMS providers.
type KMSService interface {
	// OpenKeeper opens a keeper for the key at keyURI.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
