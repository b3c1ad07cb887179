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

	"github.com/joho/godotenv"

	appcontext "github.com/taskdeck/taskdeck-server/internal/api/http/context"
	"github.com/taskdeck/taskdeck-server/internal/api/http/router"
	httpserver "github.com/taskdeck/taskdeck-server/internal/api/http/server"
	"github.com/taskdeck/taskdeck-server/internal/config"
	"github.com/taskdeck/taskdeck-server/internal/logger"
	"github.com/taskdeck/taskdeck-server/internal/model"
	"github.com/taskdeck/taskdeck-server/internal/repository/postgres"
	"github.com/taskdeck/taskdeck-server/internal/security"
	"github.com/taskdeck/taskdeck-server/internal/server"
	"github.com/taskdeck/taskdeck-server/internal/service"
	"github.com/taskdeck/taskdeck-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	todoRepo := postgres.NewTodoRepository(db)

	hasher := security.NewHasher(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := appcontext.NewManager()

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	todoService := service.NewTodo(todoRepo, logger)

	r := router.New(authService, todoService, tokenManager, ctxMgr, logger)
	httpServer := httpserver.NewHTTPServer(r.Register(), cfg.HTTP.Address)

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
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
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
