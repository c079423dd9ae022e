package app

import (
	"context"
	"fmt"
	"time"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
	cryptoService "github.com/allisson/cardledger/internal/crypto/service"
)

const cipherKeyLoadTimeout = 30 * time.Second

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// NumberCipher returns the card number cipher built from CARD_CIPHER_KEY, unwrapped
// through the KMS when KMS_KEY_URI is set.
func (c *Container) NumberCipher() (cryptoService.NumberCipher, error) {
	c.numberCipherInit.Do(func() {
		var err error
		c.numberCipher, err = c.initNumberCipher()
		if err != nil {
			c.storeErr("numberCipher", err)
		}
	})
	if err := c.loadErr("numberCipher"); err != nil {
		return nil, err
	}
	return c.numberCipher, nil
}

func (c *Container) initNumberCipher() (cryptoService.NumberCipher, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.CardCipherAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid card cipher algorithm %q: %w", c.config.CardCipherAlgorithm, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cipherKeyLoadTimeout)
	defer cancel()

	key, err := cryptoService.LoadCipherKey(ctx, c.KMSService(), c.config.CardCipherKey, c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to load card cipher key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	numberCipher, err := cryptoService.NewNumberCipher(c.AEADManager(), key, alg)
	if err != nil {
		return nil, fmt.Errorf("failed to create number cipher: %w", err)
	}
	return numberCipher, nil
}
