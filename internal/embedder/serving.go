package embedder

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/vectors"
)

// ServingConfig configures the model-serving backend.
type ServingConfig struct {
	Endpoint   string
	Dimensions int
	Timeout    time.Duration
}

// Serving calls a model-serving endpoint (e.g. a CLIP deployment) over HTTP.
// The endpoint accepts {"image": "<base64>"} and answers
// {"embedding": [...], "model": "..."}; the response is schema-validated
// before use and the vector re-normalized on this side.
type Serving struct {
	cfg    ServingConfig
	client *http.Client
	logger *slog.Logger
}

func NewServing(cfg ServingConfig, logger *slog.Logger) *Serving {
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = DefaultDimensions
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Serving{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type servingRequest struct {
	Image string `json:"image"`
}

type servingResponse struct {
	Embedding []float32 `json:"embedding"`
	Model     string    `json:"model,omitempty"`
}

func (s *Serving) GenerateEmbedding(ctx context.Context, image []byte) ([]float32, error) {
	body, err := json.Marshal(servingRequest{Image: base64.StdEncoding.EncodeToString(image)})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("embedder.http.send_error", "endpoint", s.cfg.Endpoint, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrExternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Error("embedder.http.status_error", "status", resp.StatusCode, "body_len", len(raw))
		return nil, fmt.Errorf("%w: model serving returned HTTP %d", common.ErrExternal, resp.StatusCode)
	}

	if err := ValidateEmbeddingResponse(raw, s.cfg.Dimensions); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExternal, err)
	}

	var parsed servingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	s.logger.Debug("embedder.http.ok",
		"model", parsed.Model,
		"dim", len(parsed.Embedding),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return vectors.Normalize(parsed.Embedding), nil
}

func (s *Serving) Dimensions() int {
	return s.cfg.Dimensions
}
