// Package main запускает HTTP-сервис записи на внеклассные занятия
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activity-roster-service/internal/config"
	httpapi "activity-roster-service/internal/http"
	"activity-roster-service/internal/observability"
	"activity-roster-service/internal/repository"
	"activity-roster-service/internal/service"
)

func main() {
	cfg := config.Load()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// 1. Реестр в памяти со стартовым набором занятий
	roster := repository.NewMemoryRoster(repository.SeedActivities())
	roster.Observe(observability.SetParticipants)

	// 2. Сервис
	rosterService := service.NewRosterService(roster)

	// 3. HTTP-обработчик
	handler := httpapi.NewHandler(rosterService, logger, httpapi.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server")
	case err := <-errCh:
		logger.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
