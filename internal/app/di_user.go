package app

import (
	"fmt"

	"github.com/allisson/cardledger/internal/database"
	userHttp "github.com/allisson/cardledger/internal/user/http"
	userRepository "github.com/allisson/cardledger/internal/user/repository"
	userService "github.com/allisson/cardledger/internal/user/service"
	userUseCase "github.com/allisson/cardledger/internal/user/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() userService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = userService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the access token service. It fails when the signing secret is too weak.
func (c *Container) TokenService() (userService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		var err error
		c.tokenService, err = userService.NewTokenService(c.config.AuthTokenSecret, c.config.AuthTokenExpiration)
		if err != nil {
			c.storeErr("tokenService", fmt.Errorf("failed to create token service: %w", err))
		}
	})
	if err := c.loadErr("tokenService"); err != nil {
		return nil, err
	}
	return c.tokenService, nil
}

// UserRepository returns the user repository for the configured database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		var err error
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.storeErr("userRepo", err)
		}
	})
	if err := c.loadErr("userRepo"); err != nil {
		return nil, err
	}
	return c.userRepo, nil
}

// UserUseCase returns the user use case, wrapped with metrics when enabled.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	c.userUseCaseInit.Do(func() {
		var err error
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.storeErr("userUseCase", err)
		}
	})
	if err := c.loadErr("userUseCase"); err != nil {
		return nil, err
	}
	return c.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHttp.UserHandler, error) {
	c.userHandlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.storeErr("userHandler", fmt.Errorf("failed to get user use case for user handler: %w", err))
			return
		}
		c.userHandler = userHttp.NewUserHandler(useCase, c.Logger())
	})
	if err := c.loadErr("userHandler"); err != nil {
		return nil, err
	}
	return c.userHandler, nil
}

func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return userRepository.NewMySQLUserRepository(db), nil
	case database.DriverPostgres:
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, err
	}

	baseUseCase := userUseCase.NewUserUseCase(
		txManager,
		userRepo,
		c.PasswordService(),
		tokenService,
		c.Logger(),
		c.config.PaginationMaxSize,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
