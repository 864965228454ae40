package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	checkoutv1 "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/api/checkoutv1"
	grpchandler "github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/delivery/grpc"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/entity"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/repository"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/config"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/memory"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/postgres"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/provider/httpprovider"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/provider/sandbox"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/qrgenerator"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/bidding"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/checkout"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/ledger"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/pay"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/worker"
)

const (
	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute

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

	uow, closeStore, err := initStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store init failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	provider, stopSandbox := initProvider(cfg, logger)
	defer stopSandbox()

	ledgerUC := ledger.NewUseCase(uow, logger)
	biddingUC := bidding.NewUseCase(uow, ledgerUC, logger)
	gateways := map[entity.PaymentMethod]payment.Gateway{
		entity.MethodWallet:          pay.NewWalletGateway(ledgerUC),
		entity.MethodExternalGateway: pay.NewQRGateway(provider, qrgenerator.NewGenerator(cfg.QRSize), cfg.PartnerCode),
	}
	checkoutUC, err := checkout.NewUseCase(uow, ledgerUC, gateways, provider, checkout.Config{
		PollInterval: cfg.PollInterval,
		PollAttempts: cfg.PollAttempts,
		CacheSize:    cfg.ConfirmCacheSize,
	}, logger)
	if err != nil {
		logger.Error("checkout init failed", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(cfg.QueueSize, checkoutUC, logger)
	pool.Start(cfg.WorkerCount)

	handler := grpchandler.NewHandler(checkoutUC, ledgerUC, biddingUC, pool, logger)

	srv := grpc.NewServer()
	checkoutv1.RegisterCheckoutEngineServer(srv, handler)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(checkoutv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(srv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("gRPC server starting", "addr", cfg.GRPCAddr, "store", cfg.StoreDriver)
		if err := srv.Serve(lis); err != nil {
			logger.Error("serve failed", "error", err)
		}
	}()

	go runSweeper(ctx, checkoutUC, cfg, logger)

	<-ctx.Done()
	logger.Info("shutting down...")
	healthSrv.Shutdown()
	srv.GracefulStop()
	pool.Shutdown()
}

func initStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.UnitOfWork, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		logger.Warn("using in-memory store, state is lost on restart")
		return memory.NewUnitOfWork(memory.NewStore()), func() {}, nil
	}

	if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return nil, nil, err
	}
	pool, err := initDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewUnitOfWork(pool), pool.Close, nil
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initProvider returns the external payment provider. Without PROVIDER_URL a
// sandbox provider runs in process, with its order API on SANDBOX_ADDR so
// payments can be approved by hand.
func initProvider(cfg *config.Config, logger *slog.Logger) (payment.Provider, func()) {
	if cfg.ProviderURL != "" {
		return httpprovider.NewClient(cfg.ProviderURL, cfg.ProviderTimeout, cfg.ProviderMaxElapsed, logger), func() {}
	}

	baseURL := cfg.SandboxAddr
	if strings.HasPrefix(baseURL, ":") {
		baseURL = "localhost" + baseURL
	}
	provider := sandbox.NewProvider("http://" + baseURL)

	srv := &http.Server{
		Addr:              cfg.SandboxAddr,
		Handler:           provider.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		logger.Info("sandbox provider starting", "addr", cfg.SandboxAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("sandbox serve failed", "error", err)
		}
	}()

	return provider, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// runSweeper settles or cancels transactions that stayed unsettled past the
// pending expiry, including ones a crash left mid-flight.
func runSweeper(ctx context.Context, uc *checkout.UseCase, cfg *config.Config, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		res, err := uc.ExpireStale(ctx, cfg.PendingExpiry)
		if err != nil {
			logger.Error("expiry sweep failed", "error", err)
			continue
		}
		if res.Completed+res.Failed+res.Cancelled+res.Resumed+res.Skipped > 0 {
			logger.Info("expiry sweep",
				"completed", res.Completed,
				"failed", res.Failed,
				"cancelled", res.Cancelled,
				"resumed", res.Resumed,
				"skipped", res.Skipped,
			)
		}
	}
}
