package embedder

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/vectors"
)

func TestServingGenerateEmbedding(t *testing.T) {
	var gotImage []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req servingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		var err error
		gotImage, err = base64.StdEncoding.DecodeString(req.Image)
		require.NoError(t, err)

		_ = json.NewEncoder(w).Encode(servingResponse{
			Embedding: []float32{3, 0, 4, 0},
			Model:     "clip-vit-l-14",
		})
	}))
	defer srv.Close()

	e := NewServing(ServingConfig{Endpoint: srv.URL, Dimensions: 4}, nil)
	vec, err := e.GenerateEmbedding(context.Background(), []byte("raw-bytes"))
	require.NoError(t, err)
	require.Equal(t, []byte("raw-bytes"), gotImage)
	require.Len(t, vec, 4)
	require.InDelta(t, 1.0, float64(vectors.Norm(vec)), 1e-5)
	require.InDelta(t, 0.6, float64(vec[0]), 1e-5)
	require.InDelta(t, 0.8, float64(vec[2]), 1e-5)
}

func TestServingRejectsWrongDimensionality(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(servingResponse{Embedding: []float32{1, 2}})
	}))
	defer srv.Close()

	e := NewServing(ServingConfig{Endpoint: srv.URL, Dimensions: 4}, nil)
	_, err := e.GenerateEmbedding(context.Background(), []byte("x"))
	require.ErrorIs(t, err, common.ErrExternal)
}

func TestServingRejectsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"vector": [1, 2, 3]}`))
	}))
	defer srv.Close()

	e := NewServing(ServingConfig{Endpoint: srv.URL, Dimensions: 3}, nil)
	_, err := e.GenerateEmbedding(context.Background(), []byte("x"))
	require.ErrorIs(t, err, common.ErrExternal)
}

func TestServingSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewServing(ServingConfig{Endpoint: srv.URL, Dimensions: 4}, nil)
	_, err := e.GenerateEmbedding(context.Background(), []byte("x"))
	require.ErrorIs(t, err, common.ErrExternal)
}

func TestValidateEmbeddingResponse(t *testing.T) {
	require.NoError(t, ValidateEmbeddingResponse([]byte(`{"embedding":[0.1,0.2],"model":"m"}`), 2))
	require.Error(t, ValidateEmbeddingResponse([]byte(`{"embedding":[0.1]}`), 2))
	require.Error(t, ValidateEmbeddingResponse([]byte(`{"embedding":["a","b"]}`), 2))
	require.Error(t, ValidateEmbeddingResponse([]byte(`{}`), 2))
	require.Error(t, ValidateEmbeddingResponse([]byte(`not json`), 2))
}
