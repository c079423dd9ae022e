package commands

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
	cryptoService "github.com/allisson/cardledger/internal/crypto/service"
)

var cipherKeyLine = regexp.MustCompile(`CARD_CIPHER_KEY="([^"]+)"`)

func TestRunCreateCipherKey(t *testing.T) {
	ctx := context.Background()
	kms := cryptoService.NewKMSService()

	t.Run("plain", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunCreateCipherKey(ctx, kms, discardLogger(), &out, "aes-gcm", "", ""))

		match := cipherKeyLine.FindStringSubmatch(out.String())
		require.Len(t, match, 2)
		key, err := cryptoService.LoadCipherKey(ctx, kms, match[1], "")
		require.NoError(t, err)
		assert.Len(t, key, cryptoDomain.KeySize)
		assert.Contains(t, out.String(), `CARD_CIPHER_ALGORITHM="aes-gcm"`)
		assert.NotContains(t, out.String(), "KMS_KEY_URI")
	})

	t.Run("kms-wrapped", func(t *testing.T) {
		masterKey := make([]byte, 32)
		_, err := rand.Read(masterKey)
		require.NoError(t, err)
		uri := "base64key://" + base64.URLEncoding.EncodeToString(masterKey)

		var out bytes.Buffer
		require.NoError(t, RunCreateCipherKey(ctx, kms, discardLogger(), &out, "chacha20-poly1305", "localsecrets", uri))

		match := cipherKeyLine.FindStringSubmatch(out.String())
		require.Len(t, match, 2)
		key, err := cryptoService.LoadCipherKey(ctx, kms, match[1], uri)
		require.NoError(t, err)
		assert.Len(t, key, cryptoDomain.KeySize)
		assert.Contains(t, out.String(), `KMS_PROVIDER="localsecrets"`)
	})

	t.Run("invalid-algorithm", func(t *testing.T) {
		err := RunCreateCipherKey(ctx, kms, discardLogger(), &bytes.Buffer{}, "des", "", "")
		assert.Error(t, err)
	})

	t.Run("kms-flags-must-pair", func(t *testing.T) {
		err := RunCreateCipherKey(ctx, kms, discardLogger(), &bytes.Buffer{}, "aes-gcm", "localsecrets", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be used together")
	})
}
