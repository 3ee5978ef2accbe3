package cluster

import "aura-mind/internal/domain"

// BuildAuras convierte el resultado de clustering en entradas de aura:
// voto mayoritario de emoción dominante, sentimiento medio y carta de paleta.
// Los clusters vacíos se descartan. Los slices van alineados por post usable.
func BuildAuras(postIDs []string, topEmotions []string, sentiments []float64, res Result) []domain.AuraCluster {
	if res.K == 0 {
		return nil
	}

	type acc struct {
		members   []string
		votes     map[string]int
		sentiment float64
	}
	accs := make([]acc, res.K)
	for c := range accs {
		accs[c].votes = make(map[string]int)
	}
	for i, c := range res.Assignments {
		accs[c].members = append(accs[c].members, postIDs[i])
		accs[c].votes[topEmotions[i]]++
		accs[c].sentiment += sentiments[i]
	}

	var out []domain.AuraCluster
	for c := 0; c < res.K; c++ {
		if len(accs[c].members) == 0 {
			continue
		}
		dominant := majorityEmotion(accs[c].votes)
		mean := accs[c].sentiment / float64(len(accs[c].members))
		card := PaletteFor(dominant, mean)
		out = append(out, domain.AuraCluster{
			ClusterID:       c,
			Centroid:        res.Centroids[c],
			MemberPostIDs:   accs[c].members,
			DominantEmotion: dominant,
			MeanSentiment:   mean,
			Aura:            card.Aura,
			Description:     card.Description,
		})
	}
	return out
}

// DegenerateAura emite el cluster único para usuarios con un solo post
// usable: no hay geometría que particionar.
func DegenerateAura(postIDs []string, topEmotions []string, sentiments []float64) []domain.AuraCluster {
	if len(postIDs) == 0 {
		return nil
	}
	votes := make(map[string]int)
	var sum float64
	for i := range postIDs {
		votes[topEmotions[i]]++
		sum += sentiments[i]
	}
	dominant := majorityEmotion(votes)
	mean := sum / float64(len(postIDs))
	card := PaletteFor(dominant, mean)
	return []domain.AuraCluster{{
		ClusterID:       0,
		MemberPostIDs:   postIDs,
		DominantEmotion: dominant,
		MeanSentiment:   mean,
		Aura:            card.Aura,
		Description:     card.Description,
	}}
}

// majorityEmotion resuelve el voto mayoritario; empates se rompen por el
// orden canónico de etiquetas para ser determinista.
func majorityEmotion(votes map[string]int) string {
	best := domain.EmotionNeutral
	bestCount := -1
	for _, label := range domain.EmotionLabels {
		if n := votes[label]; n > bestCount {
			best = label
			bestCount = n
		}
	}
	return best
}

// PaletteFor mapea la firma (emoción dominante, sentimiento medio) a la
// carta de aura que consume la capa de presentación.
func PaletteFor(dominantEmotion string, meanSentiment float64) domain.AuraCard {
	switch dominantEmotion {
	case domain.EmotionJoy:
		return domain.AuraBrightYellow
	case domain.EmotionLove:
		return domain.AuraBlossomPink
	case domain.EmotionSurprise:
		return domain.AuraRadiantOrange
	case domain.EmotionAnger, domain.EmotionFear, domain.EmotionDisgust, domain.EmotionSadness:
		return domain.AuraStormyGray
	default:
		if meanSentiment >= 0.05 {
			return domain.AuraTranquilBlue
		}
		return domain.AuraCalmGreen
	}
}
