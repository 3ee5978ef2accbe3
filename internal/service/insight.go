package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aura-mind/internal/domain"
)

// BuildQuickInsight arma el resumen corto que encabeza la vista del
// terapeuta: afecto dominante reciente, sentimiento medio y aura sugerida.
func BuildQuickInsight(dominantEmotion string, meanSentiment float64, aura *domain.AuraCard) string {
	affect := dominantEmotion
	if affect == "" {
		affect = "balanced"
	}
	auraName := ""
	if aura != nil {
		auraName = aura.Aura
	}
	return fmt.Sprintf("Recent language shows %s affect; average sentiment %+.2f. Aura suggests: %s.",
		affect, meanSentiment, auraName)
}

// BuildTrendSummary describe en texto la mezcla emocional del último día.
func BuildTrendSummary(trend domain.EmotionTrend) string {
	if len(trend.Days) == 0 || len(trend.Series) == 0 {
		return "No data available."
	}
	last := LastDayEmotions(trend)
	labels := make([]string, 0, len(last))
	for label, v := range last {
		if v > 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s: %d%%", label, int(math.Round(last[label]*100))))
	}
	return "Over recent posts, emotion mix shows " + strings.Join(parts, ", ") + "."
}

// BuildSessionTips deriva sugerencias de sesión desde los niveles de riesgo.
// Reglas fijas, mismas prioridades que el producto original.
func BuildSessionTips(r domain.RiskAssessment) []string {
	var tips []string
	if r.Suicidal == domain.RiskHigh {
		tips = append(tips, "Assess safety first; ask about intent, plan, means; provide crisis resources.")
	}
	if r.Depression == domain.RiskModerate || r.Depression == domain.RiskHigh {
		tips = append(tips, "Screen for MDD; explore sleep, appetite, anhedonia.")
	}
	if r.Anxiety == domain.RiskModerate || r.Anxiety == domain.RiskHigh {
		tips = append(tips, "Use grounding/breathing; identify triggers; consider CBT psychoeducation.")
	}
	if r.PTSD == domain.RiskModerate || r.PTSD == domain.RiskHigh {
		tips = append(tips, "Check trauma history and avoidance; stabilize before trauma processing.")
	}
	if r.Schizophrenia == domain.RiskModerate || r.Schizophrenia == domain.RiskHigh {
		tips = append(tips, "Clarify reality-testing issues; consider psychiatric referral.")
	}
	if len(tips) == 0 {
		tips = append(tips, "Build rapport; reinforce strengths from positive/neutral periods.")
	}
	tips = append(tips, "Validate emotions reflected in recent posts and set session goals.")
	return tips
}
