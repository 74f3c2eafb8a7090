package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/vporoshin/accounts-server/internal/api/http/handler"
	"github.com/vporoshin/accounts-server/internal/api/http/middleware"
	"github.com/vporoshin/accounts-server/internal/api/http/router"
	httpServer "github.com/vporoshin/accounts-server/internal/api/http/server"
	"github.com/vporoshin/accounts-server/internal/config"
	"github.com/vporoshin/accounts-server/internal/logger"
	"github.com/vporoshin/accounts-server/internal/mailer"
	"github.com/vporoshin/accounts-server/internal/model"
	"github.com/vporoshin/accounts-server/internal/password"
	"github.com/vporoshin/accounts-server/internal/repository/postgres"
	"github.com/vporoshin/accounts-server/internal/server"
	"github.com/vporoshin/accounts-server/internal/service"
	"github.com/vporoshin/accounts-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewBcrypt()
	resetMailer := mailer.NewResend(cfg.Email.APIKey, cfg.Email.Sender, logger)

	tokenService := service.NewTokenService(tokenManager, userRepo, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	resetService := service.NewReset(userRepo, tokenManager, hasher, resetMailer, cfg.Reset.FrontendURL, logger)

	cookies := handler.CookieOptions{Secure: cfg.HTTP.SecureCookies}
	authHandler := handler.NewAuth(authService, cookies, logger)
	userHandler := handler.NewUser(authService, logger)
	resetHandler := handler.NewReset(resetService, logger)
	authenticate := middleware.NewAuthenticate(tokenService, logger)

	r := router.New(authHandler, userHandler, resetHandler, authenticate, cfg.HTTP.CORSOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
