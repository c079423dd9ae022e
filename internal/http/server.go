// Package http provides the API server: router setup, health and readiness
// probes, request logging and the separate metrics server.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardHttp "github.com/allisson/cardledger/internal/card/http"
	"github.com/allisson/cardledger/internal/config"
	"github.com/allisson/cardledger/internal/metrics"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userHttp "github.com/allisson/cardledger/internal/user/http"
	userUseCase "github.com/allisson/cardledger/internal/user/usecase"
)

const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new Server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// newHTTPServer returns an http.Server with the timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// listen blocks serving srv. A graceful shutdown is not an error.
func listen(srv *http.Server, logger *slog.Logger, name string) error {
	logger.Info("starting "+name, slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// SetupRouter registers the middlewares and every route of the API.
//
//	public:  /health, /ready, POST /v1/users/register, POST /v1/users/login
//	USER:    /v1/cards...
//	ADMIN:   /v1/admin/...
//
// ctx bounds background work started by the middlewares (rate limiter eviction).
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	userHandler *userHttp.UserHandler,
	cardHandler *cardHttp.CardHandler,
	users userUseCase.UserUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := newCORSMiddleware(cfg, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	public := v1.Group("/users")
	public.POST("/register", userHandler.RegisterHandler)
	public.POST("/login", userHandler.LoginHandler)

	authenticated := v1.Group("")
	authenticated.Use(userHttp.AuthenticationMiddleware(users, s.logger))
	if cfg.RateLimitEnabled {
		authenticated.Use(userHttp.RateLimitMiddleware(
			ctx,
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}

	cards := authenticated.Group("/cards")
	cards.Use(userHttp.RequireRole(userDomain.RoleUser, s.logger))
	cards.GET("", cardHandler.ListOwnHandler)
	cards.GET("/:id/balance", cardHandler.BalanceHandler)
	cards.POST("/transfer", cardHandler.TransferHandler)
	cards.POST("/:id/block", cardHandler.BlockOwnHandler)

	admin := authenticated.Group("/admin")
	admin.Use(userHttp.RequireRole(userDomain.RoleAdmin, s.logger))
	admin.POST("/cards", cardHandler.CreateHandler)
	admin.GET("/cards", cardHandler.ListAllHandler)
	admin.POST("/cards/:id/block", cardHandler.BlockHandler)
	admin.POST("/cards/:id/activate", cardHandler.ActivateHandler)
	admin.DELETE("/cards/:id", cardHandler.DeleteHandler)
	admin.GET("/users", userHandler.ListHandler)
	admin.DELETE("/users/:id", userHandler.DeleteHandler)

	s.router = router
}

// GetHandler returns the configured router.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router
	return listen(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
