package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	curatorv1 "github.com/meridian-ml/data-curator/gen/proto/curator/v1"
	"github.com/meridian-ml/data-curator/internal/async"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/curation"
	"github.com/meridian-ml/data-curator/internal/embedder"
	repo "github.com/meridian-ml/data-curator/internal/repository"
	"github.com/meridian-ml/data-curator/internal/server"
	"github.com/meridian-ml/data-curator/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.URL,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := buildStore(cfg, logger)
	if err != nil {
		logger.Error("failed to build object store", "error", err)
		os.Exit(1)
	}
	emb := buildEmbedder(cfg, logger)

	jobsRepo := repo.NewJobRepository(entc, logger)
	embeddingsRepo := repo.NewEmbeddingRepository(entc, logger)

	engine := curation.NewEngine(curation.EngineConfig{
		FeedbackCount: cfg.Curation.FeedbackCount,
		SweepWorkers:  cfg.Curation.SweepWorkers,
	}, jobsRepo, embeddingsRepo, store, emb, logger)

	queue := async.NewQueue(engine, logger,
		async.WithWorkers(cfg.Curation.QueueWorkers),
		async.WithQueueSize(cfg.Curation.QueueSize),
		async.WithRunTimeout(cfg.Curation.SweepTimeout),
	)

	svc := curation.NewService(jobsRepo, embeddingsRepo, store, queue, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	curatorv1.RegisterCuratorServiceServer(grpcServer, server.NewCuratorService(svc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("data-curator listening",
		"addr", cfg.GRPCAddr,
		"storage_backend", cfg.Storage.Backend,
		"embedder_backend", cfg.Embedder.Backend,
	)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

func buildStore(cfg *common.Config, logger *slog.Logger) (storage.ObjectStore, error) {
	switch cfg.Storage.Backend {
	case common.StorageBackendMinio:
		client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewMinioStore(client, logger), nil
	default:
		return storage.NewLocalStore(cfg.Storage.LocalRoot, logger), nil
	}
}

func buildEmbedder(cfg *common.Config, logger *slog.Logger) embedder.Embedder {
	switch cfg.Embedder.Backend {
	case common.EmbedderBackendServing:
		return embedder.NewServing(embedder.ServingConfig{
			Endpoint:   cfg.Embedder.Endpoint,
			Dimensions: cfg.Embedder.Dimensions,
			Timeout:    cfg.Embedder.Timeout,
		}, logger)
	default:
		return embedder.NewMock(cfg.Embedder.Dimensions)
	}
}
