package personality

import (
	"math"
	"strings"

	"aura-mind/internal/domain"
)

// Estimador Big Five ultraliviano (0-100) a partir de densidades léxicas.
// Heurístico, explicable y no diagnóstico. Los pesos son configuración fija
// versionada junto al pipeline; acá no se entrena nada.

// Familias léxicas de señal. Se cuentan como palabras completas sobre el
// texto normalizado concatenado.
var (
	positiveWords = []string{"grateful", "curious", "excited", "learn", "explore", "create", "together", "helpful"}
	negativeWords = []string{"tired", "alone", "hopeless", "angry", "guilty", "worthless", "fail", "panic"}
	socialWords   = []string{"friends", "party", "talk", "team", "community", "meet", "hangout", "club"}
	planfulWords  = []string{"schedule", "plan", "routine", "goal", "deadline", "organize", "checklist", "task"}
	kindWords     = []string{"support", "empathy", "kind", "care", "thanks", "sorry", "appreciate", "help"}
	worryWords    = []string{"anxious", "anxiety", "worry", "overthink", "stressed", "panic", "afraid", "nervous"}
)

type lexicalSignal struct {
	pos, neg, social, planful, kind, worry float64
}

// Analyze deriva el perfil Big Five desde los textos normalizados del
// historial. Es total: siempre devuelve los cinco rasgos, incluso con corpus
// vacío (densidades 0 producen los defaults documentados), y monótono en
// cada densidad de señal.
func Analyze(texts []string) domain.Big5Profile {
	s := lexScore(texts)
	return domain.Big5Profile{
		Openness:          scale(0.6*s.pos+0.4*s.social, 0, 0.02),
		Conscientiousness: scale(0.8*s.planful-0.2*s.neg, -0.005, 0.02),
		Extraversion:      scale(0.7*s.social+0.3*s.pos, 0, 0.02),
		Agreeableness:     scale(0.8*s.kind-0.2*s.neg, -0.005, 0.02),
		Neuroticism:       scale(0.7*s.worry+0.3*s.neg, 0, 0.02),
	}
}

func lexScore(texts []string) lexicalSignal {
	corpus := strings.ToLower(strings.Join(texts, " "))
	words := strings.FieldsFunc(corpus, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})
	length := float64(len(words))
	if length < 1 {
		length = 1
	}

	index := make(map[string]int, len(words))
	for _, w := range words {
		index[strings.Trim(w, "'")]++
	}
	count := func(family []string) float64 {
		var n float64
		for _, w := range family {
			if index[w] > 0 {
				n++
			}
		}
		return n
	}

	return lexicalSignal{
		pos:     count(positiveWords) / length,
		neg:     count(negativeWords) / length,
		social:  count(socialWords) / length,
		planful: count(planfulWords) / length,
		kind:    count(kindWords) / length,
		worry:   count(worryWords) / length,
	}
}

// scale proyecta x desde [lo, hi] a la escala 0-100 con clamping.
func scale(x, lo, hi float64) int {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	if hi <= lo {
		return 0
	}
	v := int(math.Round(100 * (x - lo) / (hi - lo)))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
