package domain

import "time"

// Big5Profile son los cinco rasgos de personalidad en escala 0-100.
type Big5Profile struct {
	Openness          int `json:"openness"`          // Creatividad vs. Pragmatismo
	Conscientiousness int `json:"conscientiousness"` // Orden vs. Caos
	Extraversion      int `json:"extraversion"`      // Energía social
	Agreeableness     int `json:"agreeableness"`     // Amabilidad
	Neuroticism       int `json:"neuroticism"`       // Estabilidad emocional (inverso)
}

// MoodPoint es un bucket diario del mood trend. AvgCompound es nil cuando el
// día no tiene posts usables: el hueco es explícito, nunca se interpola.
type MoodPoint struct {
	Date        string   `json:"date"` // YYYY-MM-DD (UTC)
	AvgCompound *float64 `json:"avg_compound"`
	PostCount   int      `json:"post_count"`
}

// ForecastPoint es un día proyectado del mood forecast.
type ForecastPoint struct {
	Date          string  `json:"date"`
	PredictedMood float64 `json:"predicted_mood"`
}

// MoodForecast es la proyección a corto plazo del mood trend, con el badge
// de refuerzo del producto original.
type MoodForecast struct {
	Forecast []ForecastPoint `json:"forecast"`
	Badge    string          `json:"badge,omitempty"`
	Message  string          `json:"message"`
}

// ModelVersions identifica los modelos que produjeron los vectores y
// distribuciones de esta corrida.
type ModelVersions struct {
	Encoder    string `json:"encoder"`
	Classifier string `json:"classifier"`
}

// UserProfile es la raíz agregada que emite una corrida completa del
// pipeline. Se construye entera o no se construye: nunca se persiste parcial.
type UserProfile struct {
	ProfileID     string                `json:"profile_id"`
	UserID        string                `json:"user_id"`
	Posts         []Post                `json:"posts"`
	Sentiments    []SentimentScore      `json:"sentiments"`
	Embeddings    []Embedding           `json:"embeddings,omitempty"`
	Emotions      []EmotionDistribution `json:"emotions"`
	Auras         []AuraCluster         `json:"auras"`
	DominantAura  *AuraCard             `json:"dominant_aura,omitempty"`
	Personality   Big5Profile           `json:"personality"`
	MoodTrend     []MoodPoint           `json:"mood_trend"`
	EmotionTrend  EmotionTrend          `json:"emotion_trend"`
	Forecast      MoodForecast          `json:"forecast"`
	Risks         RiskAssessment        `json:"risks"`
	QuickInsight  string                `json:"quick_insight"`
	SessionTips   []string              `json:"session_tips"`
	Models        ModelVersions         `json:"models"`
	UsablePosts   int                   `json:"usable_posts"`
	LowConfidence bool                  `json:"low_confidence"`
	Approximate   bool                  `json:"approximate"`
	ComputedAt    time.Time             `json:"computed_at"`
}

// DominantEmotion devuelve la emoción dominante del aura mayoritaria,
// o "neutral" si no hay clusters.
func (p *UserProfile) DominantEmotion() string {
	best := ""
	bestSize := -1
	for _, a := range p.Auras {
		if len(a.MemberPostIDs) > bestSize {
			best = a.DominantEmotion
			bestSize = len(a.MemberPostIDs)
		}
	}
	if best == "" {
		return EmotionNeutral
	}
	return best
}

// ProfileSummary es la fila liviana que consume la búsqueda de terapeutas.
type ProfileSummary struct {
	UserID          string    `json:"user_id"`
	PostCount       int       `json:"post_count"`
	DominantEmotion string    `json:"dominant_emotion"`
	ComputedAt      time.Time `json:"computed_at"`
}

// SimilarPost es un resultado de búsqueda por cercanía de embeddings.
type SimilarPost struct {
	PostID    string    `json:"post_id"`
	Author    string    `json:"author"`
	RawText   string    `json:"raw_text"`
	CreatedAt time.Time `json:"created_at"`
	Distance  float64   `json:"distance"`
}
