package domain

// Set cerrado de emociones del clasificador. El orden es canónico: define
// la posición de cada emoción dentro del vector de features de clustering.
const (
	EmotionJoy      = "joy"
	EmotionLove     = "love"
	EmotionSurprise = "surprise"
	EmotionAnger    = "anger"
	EmotionSadness  = "sadness"
	EmotionFear     = "fear"
	EmotionDisgust  = "disgust"
	EmotionNeutral  = "neutral"
)

// EmotionLabels lista las etiquetas en orden canónico.
var EmotionLabels = []string{
	EmotionJoy,
	EmotionLove,
	EmotionSurprise,
	EmotionAnger,
	EmotionSadness,
	EmotionFear,
	EmotionDisgust,
	EmotionNeutral,
}

// IsEmotionLabel indica si la etiqueta pertenece al set cerrado.
func IsEmotionLabel(label string) bool {
	for _, l := range EmotionLabels {
		if l == label {
			return true
		}
	}
	return false
}

// EmotionTrend es la mezcla emocional agregada por día, normalizada para que
// cada día sume 1. Las series sin señal (todo ceros) se eliminan.
type EmotionTrend struct {
	Days   []string             `json:"days"`
	Series map[string][]float64 `json:"series"`
}
