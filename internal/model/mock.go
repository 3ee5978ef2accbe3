package model

import (
	"context"
	"hash/fnv"

	"aura-mind/internal/domain"
)

// MockEncoder permite tests y corridas offline sin un encoder real.
// Para textos sin vector explícito genera uno determinista desde un hash,
// así el mismo texto produce siempre el mismo embedding.
type MockEncoder struct {
	Vectors      map[string][]float32
	Dim          int
	Err          error
	ModelVersion string
}

func (m *MockEncoder) Version() string {
	if m.ModelVersion == "" {
		return "mock-encoder"
	}
	return m.ModelVersion
}

func (m *MockEncoder) Encode(_ context.Context, texts []string) ([][]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	dim := m.Dim
	if dim <= 0 {
		dim = 4
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := m.Vectors[t]; ok {
			out[i] = v
			continue
		}
		out[i] = hashVector(t, dim)
	}
	return out, nil
}

func hashVector(text string, dim int) []float32 {
	v := make([]float32, dim)
	for d := 0; d < dim; d++ {
		h := fnv.New32a()
		h.Write([]byte{byte(d)})
		h.Write([]byte(text))
		// Componente en [0, 1) derivada del hash.
		v[d] = float32(h.Sum32()%1000) / 1000.0
	}
	return v
}

// MockClassifier permite tests sin un clasificador real.
// Sin scores configurados devuelve neutral puro.
type MockClassifier struct {
	Scores       map[string]map[string]float64
	Err          error
	ModelVersion string
}

func (m *MockClassifier) Version() string {
	if m.ModelVersion == "" {
		return "mock-classifier"
	}
	return m.ModelVersion
}

func (m *MockClassifier) Classify(_ context.Context, text string) (map[string]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if raw, ok := m.Scores[text]; ok {
		return NormalizeDistribution(raw), nil
	}
	return NormalizeDistribution(map[string]float64{domain.EmotionNeutral: 1}), nil
}
