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

	"aura-mind/internal/domain"
)

// HTTPClassifier implementa Classifier contra el endpoint /emotions del
// sidecar de inferencia, que expone un pipeline de text-classification al
// estilo HuggingFace (lista de {label, score}).
type HTTPClassifier struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPClassifier(baseURL, apiKey, model string, logger *zap.Logger) *HTTPClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *HTTPClassifier) Version() string { return c.model }

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (map[string]float64, error) {
	reqBody := classifyRequest{Model: c.model, Input: text}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emotions", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("classifier error status", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return nil, fmt.Errorf("classifier http error: status=%d: %w", resp.StatusCode, ErrUnavailable)
	}

	var cr classifyResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return nil, fmt.Errorf("classifier api error: %s: %w", cr.Error.Message, ErrUnavailable)
	}
	if len(cr.Results) == 0 {
		return nil, fmt.Errorf("classifier empty response: %w", ErrUnavailable)
	}

	raw := make(map[string]float64, len(cr.Results))
	for _, r := range cr.Results {
		raw[strings.ToLower(strings.TrimSpace(r.Label))] = r.Score
	}
	return NormalizeDistribution(raw), nil
}

// NormalizeDistribution proyecta scores crudos sobre el set cerrado de
// emociones: descarta etiquetas desconocidas, trunca negativos a 0 y
// renormaliza para que sume 1. Sin señal útil, todo va a neutral.
func NormalizeDistribution(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(domain.EmotionLabels))
	var total float64
	for _, label := range domain.EmotionLabels {
		s := raw[label]
		if s < 0 {
			s = 0
		}
		out[label] = s
		total += s
	}
	if total <= 0 {
		for _, label := range domain.EmotionLabels {
			out[label] = 0
		}
		out[domain.EmotionNeutral] = 1
		return out
	}
	for _, label := range domain.EmotionLabels {
		out[label] /= total
	}
	return out
}

type classifyRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type classifyResponse struct {
	Results []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"results"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
