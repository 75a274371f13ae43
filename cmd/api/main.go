// Command api runs the masterblog HTTP service: an in-memory blog
// post API with CRUD and search endpoints.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mayett515/masterblog-api/internal/config"
	"github.com/mayett515/masterblog-api/internal/handler"
	"github.com/mayett515/masterblog-api/internal/logger"
	"github.com/mayett515/masterblog-api/internal/middleware"
	"github.com/mayett515/masterblog-api/internal/repository"
	"github.com/mayett515/masterblog-api/internal/router"
	"github.com/mayett515/masterblog-api/internal/server"
	"github.com/mayett515/masterblog-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; config failures go straight to stderr.
		panic(err)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, log)

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server gracefully stopped")
}
