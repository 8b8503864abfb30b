package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/mockapi"
)

// mockapi serves the catalog REST contract from memory, for developing the
// dashboard without the real backend.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	srv, err := mockapi.New(mockapi.Options{
		AdminEmail:    os.Getenv("MOCKAPI_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("MOCKAPI_ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("MOCKAPI_JWT_SECRET"),
		OTP:           os.Getenv("MOCKAPI_OTP"),
		Log:           logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("mock api listening", slog.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
}
