package domain

import (
	"github.com/allisson/cardledger/internal/errors"
)

// Cryptographic operation errors.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key that is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidCipherKey indicates the configured card cipher key is missing or not valid base64.
	ErrInvalidCipherKey = errors.Wrap(errors.ErrInvalidInput, "invalid card cipher key")

	// ErrDecryptionFailed indicates a stored card number could not be decrypted.
	//
	// The cause (wrong key, tampered ciphertext, wrong card id) is not disclosed.
	ErrDecryptionFailed = errors.New("decryption failed")
)
