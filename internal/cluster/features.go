package cluster

import "aura-mind/internal/domain"

// BuildFeatures arma el vector de clustering por post: embedding ⊕ sentimiento
// escalado ⊕ distribución emocional escalada. La composición es fija y en
// orden canónico de etiquetas; los pesos definen la geometría de los clusters.
func BuildFeatures(
	embeddings [][]float32,
	sentiments []float64,
	emotions []map[string]float64,
	sentimentWeight, emotionWeight float64,
) [][]float64 {
	n := len(embeddings)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, 0, len(embeddings[i])+1+len(domain.EmotionLabels))
		for _, v := range embeddings[i] {
			row = append(row, float64(v))
		}
		row = append(row, sentimentWeight*sentiments[i])
		for _, label := range domain.EmotionLabels {
			row = append(row, emotionWeight*emotions[i][label])
		}
		out[i] = row
	}
	return out
}
