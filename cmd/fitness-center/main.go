package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/fitness-center/internal/config"
	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/deppfellow/fitness-center/internal/handler"
	"github.com/deppfellow/fitness-center/internal/lib/email"
	"github.com/deppfellow/fitness-center/internal/lib/job"
	"github.com/deppfellow/fitness-center/internal/logger"
	"github.com/deppfellow/fitness-center/internal/repository"
	"github.com/deppfellow/fitness-center/internal/router"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/service"
)

const DefaultContextTimeout = 30

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	migrateCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	if err := database.Migrate(migrateCtx, &log, cfg.Database.DSN()); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	cancel()

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv.DB)

	if srv.Job != nil {
		var mailer job.Mailer
		if cfg.Integration.ResendAPIKey != "" {
			mailer = email.NewClient(cfg, &log)
		} else {
			log.Info().Msg("resend api key not configured, notification emails disabled")
		}

		srv.Job.InitHandlers(mailer, repos.Customer)
		if err := srv.Job.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start background job server")
		}
	}

	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
