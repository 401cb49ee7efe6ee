package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/meridian-ml/data-curator/internal/curation"
	"github.com/meridian-ml/data-curator/internal/embedder"
	repo "github.com/meridian-ml/data-curator/internal/repository"
	"github.com/meridian-ml/data-curator/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// inlineDispatcher runs the curation pipeline synchronously; the batch CLI
// has nothing else to do while the sweep runs.
type inlineDispatcher struct {
	engine *curation.Engine
}

func (d *inlineDispatcher) Dispatch(ctx context.Context, jobID uuid.UUID) error {
	return d.engine.Run(ctx, jobID)
}

func main() {
	var (
		inmem   = flag.Bool("inmem", true, "use in-memory SQLite database")
		dsn     = flag.String("dsn", "", "SQLite DSN when not using --inmem")
		dir     = flag.String("dir", "", "directory of raw images to curate (required)")
		project = flag.String("project", "local-batch", "project identifier")
		count   = flag.Int("count", 10, "number of boundary images sampled for review")
		dim     = flag.Int("dim", embedder.DefaultDimensions, "embedding dimensionality")
		workers = flag.Int("workers", 4, "concurrent embedding workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	rawDir, err := filepath.Abs(*dir)
	if err != nil {
		printError("Error: resolving --dir: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	sqliteDSN := *dsn
	if *inmem {
		sqliteDSN = ""
	}
	entc, err := repo.OpenSQLite(sqliteDSN, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	embeddingsRepo := repo.NewEmbeddingRepository(entc, logger)
	store := storage.NewLocalStore(filepath.Dir(rawDir), logger)
	emb := embedder.NewMock(*dim)

	engine := curation.NewEngine(curation.EngineConfig{
		FeedbackCount: *count,
		SweepWorkers:  *workers,
	}, jobsRepo, embeddingsRepo, store, emb, logger)

	svc := curation.NewService(jobsRepo, embeddingsRepo, store, &inlineDispatcher{engine: engine}, logger)

	logger.Info("starting curation batch", "project", *project, "dir", rawDir)
	jobID, err := svc.StartCuration(ctx, *project, rawDir)
	if err != nil {
		logger.Error("failed to run curation", "error", err)
		os.Exit(1)
	}

	job, err := svc.GetStatus(ctx, jobID)
	if err != nil {
		logger.Error("failed to load job", "job_id", jobID, "error", err)
		os.Exit(1)
	}

	// Accept every sampled image: the batch CLI exists to exercise the
	// pipeline end to end, not to review images.
	feedback := make([]curation.Feedback, 0, len(job.ImagesForFeedback))
	for _, img := range job.ImagesForFeedback {
		feedback = append(feedback, curation.Feedback{ImageID: img.ImageID, Accepted: true})
	}
	if _, err := svc.SubmitFeedback(ctx, jobID, feedback); err != nil {
		logger.Error("failed to submit feedback", "job_id", jobID, "error", err)
		os.Exit(1)
	}

	job, err = svc.GetStatus(ctx, jobID)
	if err != nil {
		logger.Error("failed to load job", "job_id", jobID, "error", err)
		os.Exit(1)
	}

	curatedURI := ""
	if job.CuratedDataURI != nil {
		curatedURI = *job.CuratedDataURI
	}
	logger.Info("curation batch complete",
		"job_id", jobID,
		"status", job.Status,
		"reviewed", len(job.ImagesForFeedback),
		"curated_uri", curatedURI,
	)

	fmt.Printf("Curation batch complete!\n")
	fmt.Printf("- Job: %s (%s)\n", jobID, job.Status)
	fmt.Printf("- Images reviewed: %d\n", len(job.ImagesForFeedback))
	fmt.Printf("- Curated dataset: %s\n", curatedURI)
}
