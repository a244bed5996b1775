package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-encounters/internal/handlers/rest/v1alpha1"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/monster"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-encounters/internal/platform/config"
	platformotel "github.com/KirkDiggler/rpg-encounters/internal/platform/otel"
	"github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters"
)

const (
	serviceName     = "rpg-encounters"
	shutdownTimeout = 30 * time.Second
	healthInterval  = 30 * time.Second
	catalogService  = "rpg-encounters.catalog"
)

var (
	httpPort int
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC health servers",
	Long: `Start the encounter service. The REST API is served over HTTP and a gRPC server
exposes health checks and reflection.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP port (overrides RPG_ENCOUNTERS_HTTP_PORT)")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 0, "gRPC health port (overrides RPG_ENCOUNTERS_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.HTTPPort = httpPort
	}
	if cmd.Flags().Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	slog.SetDefault(cfg.NewLogger(os.Stderr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.InfoContext(ctx, "Received shutdown signal, gracefully stopping")
		cancel()
	}()

	shutdownTracing, err := platformotel.Setup(ctx, &platformotel.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
		Enabled:     cfg.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Warn("Failed to close catalog store", "error", err)
		}
	}()

	monsterRepo, err := monsters.NewCatalog(&monsters.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create monster catalog: %w", err)
	}

	roller := newRoller(ctx, cfg)

	encounterService, err := encounter.NewOrchestrator(&encounter.Config{
		MonsterRepo: monsterRepo,
		Roller:      roller,
		IDGenerator: idgen.NewUUID("mon"),
		Tracer:      otel.Tracer(serviceName),
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter service: %w", err)
	}

	monsterService, err := monster.NewOrchestrator(&monster.Config{MonsterRepo: monsterRepo})
	if err != nil {
		return fmt.Errorf("failed to create monster service: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		Roller:      roller,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return fmt.Errorf("failed to create dice service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: encounterService,
		MonsterService:   monsterService,
		DiceService:      diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	healthServer := health.NewServer()
	checkCatalog(ctx, monsterRepo, healthServer)

	var lis net.Listener
	if cfg.GRPCPort > 0 {
		lis, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.InfoContext(gctx, "HTTP server starting", "port", cfg.HTTPPort, "backend", cfg.CatalogBackend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		slog.Info("Shutting down HTTP server")
		return httpServer.Shutdown(shutdownCtx)
	})

	if lis != nil {
		srv := grpc.NewServer(
			grpc.ChainUnaryInterceptor(
				grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
				grpc_recovery.UnaryServerInterceptor(),
			),
			grpc.ChainStreamInterceptor(
				grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
				grpc_recovery.StreamServerInterceptor(),
			),
		)
		grpc_health_v1.RegisterHealthServer(srv, healthServer)
		reflection.Register(srv)

		g.Go(func() error {
			slog.InfoContext(gctx, "gRPC health server starting", "port", cfg.GRPCPort)
			if err := srv.Serve(lis); err != nil {
				return fmt.Errorf("failed to serve grpc: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()
			stopGRPC(srv)
			return nil
		})

		g.Go(func() error {
			watchCatalog(gctx, monsterRepo, healthServer)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

// stopGRPC drains in-flight calls, forcing a stop after shutdownTimeout
func stopGRPC(srv *grpc.Server) {
	slog.Info("Shutting down gRPC server")

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("gRPC server stopped gracefully")
	}
}

// checkCatalog marks the service healthy when the catalog can be read
func checkCatalog(ctx context.Context, repo monsters.Repository, hs *health.Server) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if _, err := repo.List(ctx, &monsters.ListInput{}); err != nil {
		slog.WarnContext(ctx, "Catalog health check failed", "error", err)
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	hs.SetServingStatus("", status)
	hs.SetServingStatus(catalogService, status)
}

func watchCatalog(ctx context.Context, repo monsters.Repository, hs *health.Server) {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			hs.Shutdown()
			return
		case <-ticker.C:
			checkCatalog(ctx, repo, hs)
		}
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
