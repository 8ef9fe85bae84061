package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	httpadp "fundo-backend/internal/adapter/http"
	mw "fundo-backend/internal/adapter/middleware"
	repo "fundo-backend/internal/adapter/repository/mysql"
	"fundo-backend/internal/config"
	"fundo-backend/internal/infrastructure/cache"
	"fundo-backend/internal/infrastructure/db"
	"fundo-backend/internal/usecase/auth"
	ucLoan "fundo-backend/internal/usecase/loan"
	"fundo-backend/pkg/id"
	"fundo-backend/pkg/logger"
	"fundo-backend/pkg/password"
	"fundo-backend/pkg/token"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{Development: cfg.IsDevelopment(), Level: cfg.LogLevel})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	decimal.MarshalJSONWithoutQuotes = true

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		return err
	}
	hasher := password.NewBcrypt(password.MinCost)

	ctx := context.Background()
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}
	if cfg.Seed {
		if err := db.Seed(ctx, gdb, hasher, log); err != nil {
			return err
		}
	}

	signer, err := token.NewSigner(token.Config{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL(),
	})
	if err != nil {
		return err
	}

	loanRepo := repo.NewLoanRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)
	tx := repo.NewGormUoW(gdb)
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	routes := httpadp.Routes{
		Health:      httpadp.NewHandler(sqlDB, log),
		Loans:       httpadp.NewLoanHandler(ucLoan.NewUsecase(loanRepo, tx, log)),
		Auth:        httpadp.NewAuthHandler(auth.NewUsecase(userRepo, tx, signer, hasher, cfg.JWTExpirationMins, log)),
		RequireAuth: mw.RequireAuth(signer),
	}
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		routes.Idempotency = mw.IdempotencyMiddleware(rdb, cfg.IdempTTL(), log)
	} else {
		log.Warn().Msg("REDIS_ADDR not set; idempotency disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.NewErrorHandler(log)
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		mw.RequestLogger(log),
		middleware.Recover(),
		middleware.SecureWithConfig(middleware.SecureConfig{
			XSSProtection:      "1; mode=block",
			ContentTypeNosniff: "nosniff",
			XFrameOptions:      "DENY",
			ReferrerPolicy:     "strict-origin-when-cross-origin",
		}),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, mw.HeaderRequestID, mw.HeaderRequestAt},
			AllowCredentials: true,
		}),
	)
	routes.Register(e)

	srvErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.Info().Str("addr", addr).Str("env", cfg.AppEnv).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-srvErr:
		return err
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
