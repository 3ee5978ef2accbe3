package domain

import "time"

// Razones por las que un post queda fuera del análisis.
const (
	SkipReasonEmpty        = "empty_after_normalize"
	SkipReasonEncoder      = "encoder_unavailable"
	SkipReasonClassifier   = "classifier_unavailable"
	SkipReasonModelTimeout = "model_timeout"
)

// Post es un registro inmutable entregado por el colaborador de ingesta.
// NormalizedText y los flags de skip se completan durante el pipeline.
type Post struct {
	ID             string    `json:"id"`
	Author         string    `json:"author"`
	CreatedAt      time.Time `json:"created_at"`
	RawText        string    `json:"raw_text"`
	NormalizedText string    `json:"normalized_text"`
	Skipped        bool      `json:"skipped"`
	SkipReason     string    `json:"skip_reason,omitempty"`
}

// SentimentScore es el puntaje léxico por post. Compound está en [-1, 1].
type SentimentScore struct {
	PostID   string  `json:"post_id"`
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
}

// Embedding es el vector denso de un post junto con la versión del modelo
// que lo produjo. Vectores de versiones distintas nunca se comparan entre sí.
type Embedding struct {
	PostID       string    `json:"post_id"`
	Vector       []float32 `json:"vector"`
	ModelVersion string    `json:"model_version"`
}

// EmotionDistribution es la distribución de probabilidad sobre el set
// cerrado de emociones. Las probabilidades son >= 0 y suman 1 (±1e-6).
type EmotionDistribution struct {
	PostID       string             `json:"post_id"`
	Scores       map[string]float64 `json:"scores"`
	ModelVersion string             `json:"model_version"`
}

// TopEmotion devuelve la emoción con mayor probabilidad.
// Empates se resuelven por orden canónico de etiquetas para ser determinista.
func (d EmotionDistribution) TopEmotion() string {
	best := EmotionNeutral
	bestScore := -1.0
	for _, label := range EmotionLabels {
		if s, ok := d.Scores[label]; ok && s > bestScore {
			best = label
			bestScore = s
		}
	}
	return best
}
