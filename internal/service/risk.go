package service

import (
	"strings"

	"aura-mind/internal/domain"
)

// Heurísticas livianas y explicables para los indicadores de riesgo.
// Devuelven niveles categóricos, no diagnósticos: combinan keywords en el
// corpus, proporciones emocionales del último día y sentimiento medio.

var (
	suicideKeywords = []string{"suicide", "kill myself", "end my life", "self harm", "self-harm", "cutting", "no reason to live"}
	anxietyKeywords = []string{"panic", "worry", "anxious", "anxiety", "restless", "overthinking"}
	ptsdKeywords    = []string{"flashback", "nightmare", "trauma", "abuse", "assault", "intrusive", "hypervigilant"}
	schizoKeywords  = []string{"voices", "hallucination", "paranoid", "delusion", "thought broadcasting", "schizophrenia"}
	depKeywords     = []string{"worthless", "fatigue", "insomnia", "guilty"}
)

// RiskInputs son las señales agregadas que alimentan los umbrales.
type RiskInputs struct {
	Corpus          string
	MeanSentiment   float64
	LastDayEmotions map[string]float64
}

// AssessRisks deriva los cinco indicadores con los pesos fijos heredados del
// producto original. moderate y high son los umbrales configurables tras
// normalizar cada score a su tope.
func AssessRisks(in RiskInputs, moderate, high float64) domain.RiskAssessment {
	corpus := strings.ToLower(in.Corpus)
	hits := func(keywords []string) float64 {
		var n float64
		for _, k := range keywords {
			if strings.Contains(corpus, k) {
				n++
			}
		}
		return n
	}

	sadness := in.LastDayEmotions[domain.EmotionSadness]
	fear := in.LastDayEmotions[domain.EmotionFear]
	anger := in.LastDayEmotions[domain.EmotionAnger]
	disgust := in.LastDayEmotions[domain.EmotionDisgust]
	surprise := in.LastDayEmotions[domain.EmotionSurprise]
	neutral := in.LastDayEmotions[domain.EmotionNeutral]

	negSentiment := 0.0
	if in.MeanSentiment < 0 {
		negSentiment = -in.MeanSentiment
	}

	depScore := 0.45*sadness + 0.25*(1-neutral) + 0.30*negSentiment + 0.05*hits(depKeywords)
	anxScore := 0.40*fear + 0.20*surprise + 0.25*hits(anxietyKeywords) + 0.15*negSentiment
	ptsdScore := 0.45*hits(ptsdKeywords) + 0.30*fear + 0.25*anger
	schScore := 0.55*hits(schizoKeywords) + 0.20*surprise + 0.25*disgust
	suiScore := 0.60*hits(suicideKeywords) + 0.25*sadness + 0.15*negSentiment

	bucket := func(score, cap float64) domain.RiskLevel {
		x := score / cap
		if x > 1 {
			x = 1
		}
		if x >= high {
			return domain.RiskHigh
		}
		if x >= moderate {
			return domain.RiskModerate
		}
		return domain.RiskLow
	}

	return domain.RiskAssessment{
		Depression:    bucket(depScore, 1.2),
		Anxiety:       bucket(anxScore, 1.2),
		PTSD:          bucket(ptsdScore, 1.0),
		Schizophrenia: bucket(schScore, 1.0),
		Suicidal:      bucket(suiScore, 1.0),
	}
}
