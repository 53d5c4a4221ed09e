// Command api runs the tourism agency booking HTTP server.
//
// With -reset it instead drops and recreates the database schema with
// seed data, then exits. The reset is destructive and unprompted; it is
// meant for development and demo environments.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/config"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/handler"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/logger"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/middleware"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/repository"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/router"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/service"

	"github.com/labstack/echo/v4"
)

func main() {
	resetSchema := flag.Bool("reset", false, "drop and recreate the database schema with seed data, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// config.Load logs fatally on its own; this is a safety net.
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	if *resetSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.DB.Reset(ctx); err != nil {
			log.Fatal().Err(err).Msg("schema reset failed")
		}

		if err := srv.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("cleanup after reset failed")
		}
		return
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.RegisterRoutes(e, handlers, middlewares)

	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
