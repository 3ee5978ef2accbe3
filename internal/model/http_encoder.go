package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPEncoder implementa Encoder contra un endpoint /embeddings
// OpenAI-compatible servido por el sidecar de inferencia.
type HTTPEncoder struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPEncoder construye un cliente HTTP apuntando a la API de embeddings.
func NewHTTPEncoder(baseURL, apiKey, model string, logger *zap.Logger) *HTTPEncoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPEncoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (e *HTTPEncoder) Version() string { return e.model }

// Encode envía el batch completo en una sola llamada. El endpoint devuelve
// un embedding por item, independiente del resto del batch.
func (e *HTTPEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	reqBody := embeddingsRequest{Model: e.model, Input: texts}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		e.logger.Warn("encoder error status", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return nil, fmt.Errorf("encoder http error: status=%d: %w", resp.StatusCode, ErrUnavailable)
	}

	var er embeddingsResponse
	if err := json.Unmarshal(respBody, &er); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if er.Error != nil {
		return nil, fmt.Errorf("encoder api error: %s: %w", er.Error.Message, ErrUnavailable)
	}
	if len(er.Data) != len(texts) {
		return nil, fmt.Errorf("encoder returned %d embeddings for %d inputs: %w", len(er.Data), len(texts), ErrUnavailable)
	}

	vectors := make([][]float32, len(texts))
	for _, item := range er.Data {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("encoder returned out-of-range index %d: %w", item.Index, ErrUnavailable)
		}
		vectors[item.Index] = item.Embedding
	}
	for i, v := range vectors {
		if len(v) == 0 {
			return nil, fmt.Errorf("encoder returned empty embedding at index %d: %w", i, ErrUnavailable)
		}
	}
	return vectors, nil
}

type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingsResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
