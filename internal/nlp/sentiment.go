package nlp

import (
	"math"
	"strings"
)

// Sentiment es el resultado del scoring léxico de una unidad de texto.
// Compound es el escalar acotado en [-1, 1]; Pos/Neg/Neu son proporciones.
type Sentiment struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

const (
	negationFactor     = -0.74
	butBeforeFactor    = 0.5
	butAfterFactor     = 1.5
	exclamationBoost   = 0.292
	maxExclamations    = 4
	normalizationAlpha = 15.0

	// Decaimiento del booster según distancia a la palabra con valencia.
	boosterDecayOne = 0.95
	boosterDecayTwo = 0.90
)

// ScoreText puntúa texto normalizado con reglas léxicas al estilo VADER:
// valencias por palabra, intensificadores con decaimiento, negación en
// ventana de 3 tokens, reponderación alrededor de "but" y énfasis por
// signos de exclamación. Determinista y sin estado entre posts.
// Texto vacío devuelve el score neutro (Compound == 0).
func ScoreText(text string) Sentiment {
	text = strings.TrimSpace(text)
	if text == "" {
		return Sentiment{}
	}

	tokens := strings.Fields(text)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = strings.Trim(tok, ".,!?")
	}

	valences := make([]float64, len(words))
	for i, w := range words {
		v, ok := sentimentLexicon[w]
		if !ok {
			continue
		}
		v = applyBoosters(v, words, i)
		if isNegated(words, i) {
			v *= negationFactor
		}
		valences[i] = v
	}

	applyButWeighting(words, valences)

	var sum float64
	for _, v := range valences {
		sum += v
	}
	if sum != 0 {
		sum += punctuationEmphasis(text, sum)
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if compound > 1 {
		compound = 1
	}
	if compound < -1 {
		compound = -1
	}

	pos, neg, neu := proportions(words, valences)
	return Sentiment{Compound: compound, Positive: pos, Negative: neg, Neutral: neu}
}

// applyBoosters suma el aporte de intensificadores en los 3 tokens previos,
// escalado por distancia y orientado según el signo de la valencia.
func applyBoosters(valence float64, words []string, idx int) float64 {
	for dist := 1; dist <= 3; dist++ {
		j := idx - dist
		if j < 0 {
			break
		}
		boost, ok := boosterLexicon[words[j]]
		if !ok {
			continue
		}
		switch dist {
		case 2:
			boost *= boosterDecayOne
		case 3:
			boost *= boosterDecayTwo
		}
		if valence < 0 {
			boost = -boost
		}
		valence += boost
	}
	return valence
}

func isNegated(words []string, idx int) bool {
	for dist := 1; dist <= 3; dist++ {
		j := idx - dist
		if j < 0 {
			return false
		}
		if _, ok := negationWords[words[j]]; ok {
			return true
		}
	}
	return false
}

// applyButWeighting atenúa lo dicho antes de "but" y refuerza lo posterior.
func applyButWeighting(words []string, valences []float64) {
	butIdx := -1
	for i, w := range words {
		if w == "but" {
			butIdx = i
			break
		}
	}
	if butIdx < 0 {
		return
	}
	for i := range valences {
		if i < butIdx {
			valences[i] *= butBeforeFactor
		} else if i > butIdx {
			valences[i] *= butAfterFactor
		}
	}
}

// punctuationEmphasis amplifica según cantidad de '!' (tope 4), con el signo
// de la suma acumulada.
func punctuationEmphasis(text string, sum float64) float64 {
	count := strings.Count(text, "!")
	if count > maxExclamations {
		count = maxExclamations
	}
	amp := float64(count) * exclamationBoost
	if sum < 0 {
		return -amp
	}
	return amp
}

func proportions(words []string, valences []float64) (pos, neg, neu float64) {
	var posSum, negSum, neuCount float64
	for i := range words {
		v := valences[i]
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += math.Abs(v) + 1
		default:
			neuCount++
		}
	}
	total := posSum + negSum + neuCount
	if total == 0 {
		return 0, 0, 0
	}
	return posSum / total, negSum / total, neuCount / total
}
