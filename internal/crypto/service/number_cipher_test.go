package service

import (
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
)

func TestNumberCipher(t *testing.T) {
	numberCipher, err := NewNumberCipher(NewAEADManager(), newKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)

	cardID := uuid.Must(uuid.NewV7())
	number := "4000123412341234"

	t.Run("Success_RoundTrip", func(t *testing.T) {
		encrypted, err := numberCipher.Encrypt(cardID, number)
		require.NoError(t, err)
		assert.NotContains(t, encrypted, number)

		decrypted, err := numberCipher.Decrypt(cardID, encrypted)
		require.NoError(t, err)
		assert.Equal(t, number, decrypted)
	})

	t.Run("Success_DistinctCiphertexts", func(t *testing.T) {
		first, err := numberCipher.Encrypt(cardID, number)
		require.NoError(t, err)
		second, err := numberCipher.Encrypt(cardID, number)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Error_OtherCardID", func(t *testing.T) {
		encrypted, err := numberCipher.Encrypt(cardID, number)
		require.NoError(t, err)

		_, err = numberCipher.Decrypt(uuid.Must(uuid.NewV7()), encrypted)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_NotBase64", func(t *testing.T) {
		_, err := numberCipher.Decrypt(cardID, "%%%")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_TooShort", func(t *testing.T) {
		_, err := numberCipher.Decrypt(cardID, base64.StdEncoding.EncodeToString([]byte("short")))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestNewNumberCipher_Error(t *testing.T) {
	t.Run("Error_InvalidKeySize", func(t *testing.T) {
		_, err := NewNumberCipher(NewAEADManager(), []byte("short"), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		_, err := NewNumberCipher(NewAEADManager(), newKey(t), cryptoDomain.Algorithm("des"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}
