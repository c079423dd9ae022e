package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
)

func newKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	validKey := newKey(t)

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, cryptoDomain.AESGCM)
		require.NoError(t, err)
		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
	})

	t.Run("create ChaCha20-Poly1305 cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, cryptoDomain.ChaCha20)
		require.NoError(t, err)
		_, ok := cipher.(*ChaCha20Poly1305Cipher)
		assert.True(t, ok, "cipher should be of type *ChaCha20Poly1305Cipher")
	})

	t.Run("create cipher with unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(validKey, cryptoDomain.Algorithm("AES-GCM"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := manager.CreateCipher(make([]byte, size), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize, "size %d", size)
	}

	t.Run("create cipher with nil key", func(t *testing.T) {
		_, err := manager.CreateCipher(nil, cryptoDomain.ChaCha20)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestAEAD_EncryptDecrypt(t *testing.T) {
	manager := NewAEADManager()

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			cipher, err := manager.CreateCipher(newKey(t), alg)
			require.NoError(t, err)

			plaintext := []byte("4000123412341234")
			aad := []byte("card-id")

			t.Run("round trip", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				assert.Len(t, nonce, 12)
				assert.NotEqual(t, plaintext, ciphertext)

				decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			})

			t.Run("nonce is unique for each encryption", func(t *testing.T) {
				_, nonce1, err := cipher.Encrypt(plaintext, nil)
				require.NoError(t, err)
				_, nonce2, err := cipher.Encrypt(plaintext, nil)
				require.NoError(t, err)
				assert.NotEqual(t, nonce1, nonce2)
			})

			t.Run("wrong AAD fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				_, err = cipher.Decrypt(ciphertext, nonce, []byte("other-card"))
				assert.Error(t, err)
			})

			t.Run("tampered ciphertext fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				ciphertext[0] ^= 0xFF
				_, err = cipher.Decrypt(ciphertext, nonce, aad)
				assert.Error(t, err)
			})

			t.Run("short nonce fails", func(t *testing.T) {
				ciphertext, _, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				_, err = cipher.Decrypt(ciphertext, []byte{1, 2, 3}, aad)
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			})
		})
	}
}

func TestNewAESGCM_InvalidKey(t *testing.T) {
	_, err := NewAESGCM(make([]byte, 16))
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
}

func TestNewChaCha20Poly1305_InvalidKey(t *testing.T) {
	_, err := NewChaCha20Poly1305(make([]byte, 64))
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
}
