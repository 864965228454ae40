package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpdelivery "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/delivery/http"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/config"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/grpcclient"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/qrgenerator"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/generateqr"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engineClient, err := grpcclient.NewClient(cfg.CoreGRPCAddr)
	if err != nil {
		logger.Error("grpc client init failed", "error", err)
		cancel()
		return
	}
	defer engineClient.Close()

	qrGen := qrgenerator.NewGenerator(cfg.QRSize)
	generateQRUC := generateqr.NewUseCase(engineClient, qrGen)

	handler := httpdelivery.NewHandler(engineClient, generateQRUC)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "engine", cfg.CoreGRPCAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
