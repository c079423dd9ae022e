package app

import (
	"fmt"

	cardHttp "github.com/allisson/cardledger/internal/card/http"
	cardRepository "github.com/allisson/cardledger/internal/card/repository"
	cardService "github.com/allisson/cardledger/internal/card/service"
	cardUseCase "github.com/allisson/cardledger/internal/card/usecase"
	"github.com/allisson/cardledger/internal/database"
)

// CardRepository returns the card repository for the configured database driver.
func (c *Container) CardRepository() (cardUseCase.CardRepository, error) {
	c.cardRepoInit.Do(func() {
		var err error
		c.cardRepo, err = c.initCardRepository()
		if err != nil {
			c.storeErr("cardRepo", err)
		}
	})
	if err := c.loadErr("cardRepo"); err != nil {
		return nil, err
	}
	return c.cardRepo, nil
}

// CardUseCase returns the card ledger use case, wrapped with metrics when enabled.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	c.cardUseCaseInit.Do(func() {
		var err error
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.storeErr("cardUseCase", err)
		}
	})
	if err := c.loadErr("cardUseCase"); err != nil {
		return nil, err
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler.
func (c *Container) CardHandler() (*cardHttp.CardHandler, error) {
	c.cardHandlerInit.Do(func() {
		useCase, err := c.CardUseCase()
		if err != nil {
			c.storeErr("cardHandler", fmt.Errorf("failed to get card use case for card handler: %w", err))
			return
		}
		c.cardHandler = cardHttp.NewCardHandler(useCase, c.Logger())
	})
	if err := c.loadErr("cardHandler"); err != nil {
		return nil, err
	}
	return c.cardHandler, nil
}

func (c *Container) initCardRepository() (cardUseCase.CardRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for card repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return cardRepository.NewMySQLCardRepository(db), nil
	case database.DriverPostgres:
		return cardRepository.NewPostgreSQLCardRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for card use case: %w", err)
	}

	cardRepo, err := c.CardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get card repository for card use case: %w", err)
	}

	// The user use case resolves owner emails for the ledger.
	identity, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity resolver for card use case: %w", err)
	}

	numberCipher, err := c.NumberCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get number cipher for card use case: %w", err)
	}

	baseUseCase := cardUseCase.NewCardUseCase(
		txManager,
		cardRepo,
		identity,
		numberCipher,
		cardService.NewDefaultNumberGenerator(),
		cardService.SystemClock(),
		c.Logger(),
		cardUseCase.Config{
			TransferCommitTimeout: c.config.TransferCommitTimeout,
			PaginationMaxSize:     c.config.PaginationMaxSize,
		},
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return cardUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
