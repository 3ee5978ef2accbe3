package domain

// AuraCluster es un cluster de posts con firma emocional similar.
// ClusterID es estable solo dentro de una corrida del pipeline.
type AuraCluster struct {
	ClusterID       int       `json:"cluster_id"`
	Centroid        []float64 `json:"centroid"`
	MemberPostIDs   []string  `json:"member_post_ids"`
	DominantEmotion string    `json:"dominant_emotion"`
	MeanSentiment   float64   `json:"mean_sentiment"`
	Aura            string    `json:"aura"`
	Description     string    `json:"description"`
}

// AuraCard es la entrada de paleta lista para presentación (estilo Spotify).
type AuraCard struct {
	Aura        string `json:"aura"`
	Description string `json:"description"`
}

// Paleta de auras heredada del producto original.
var (
	AuraCalmGreen     = AuraCard{Aura: "🌿 Calm Green", Description: "Reflective and grounded — you often express thoughtfulness."}
	AuraRadiantOrange = AuraCard{Aura: "🔥 Radiant Orange", Description: "Energetic and expressive — your posts show high engagement."}
	AuraTranquilBlue  = AuraCard{Aura: "🌊 Tranquil Blue", Description: "Balanced and introspective — calm tone with positive reflections."}
	AuraStormyGray    = AuraCard{Aura: "🌪️ Stormy Gray", Description: "You’ve shared signs of stress or emotional intensity recently."}
	AuraBlossomPink   = AuraCard{Aura: "🌸 Blossom Pink", Description: "Compassionate and emotionally aware — empathetic tone detected."}
	AuraBrightYellow  = AuraCard{Aura: "🌞 Bright Yellow", Description: "Optimistic and uplifting — your tone reflects positivity."}
)
