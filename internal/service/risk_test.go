package service

import (
	"testing"

	"aura-mind/internal/domain"
)

func assess(in RiskInputs) domain.RiskAssessment {
	return AssessRisks(in, 0.33, 0.66)
}

func TestAssessRisks_QuietInputsAreLow(t *testing.T) {
	got := assess(RiskInputs{Corpus: "went for a walk and cooked dinner", MeanSentiment: 0.3})
	want := domain.DefaultRiskAssessment()
	if got != want {
		t.Fatalf("expected all-low assessment, got %+v", got)
	}
}

func TestAssessRisks_SuicidalKeywordsEscalateToHigh(t *testing.T) {
	got := assess(RiskInputs{
		Corpus:        "some nights i want to kill myself, there is no reason to live",
		MeanSentiment: -0.4,
	})
	if got.Suicidal != domain.RiskHigh {
		t.Fatalf("expected high suicidal risk, got %s", got.Suicidal)
	}
}

func TestAssessRisks_AnxietySignals(t *testing.T) {
	got := assess(RiskInputs{
		Corpus: "the worry never stops and the anxiety is constant",
		LastDayEmotions: map[string]float64{
			domain.EmotionFear: 0.6,
		},
	})
	// 0.40*0.6 + 0.25*2 keywords = 0.74 sobre tope 1.2: moderado.
	if got.Anxiety != domain.RiskModerate {
		t.Fatalf("expected moderate anxiety, got %s", got.Anxiety)
	}
}

func TestAssessRisks_DepressionCombinesSignals(t *testing.T) {
	got := assess(RiskInputs{
		Corpus:        "i feel worthless and the fatigue never ends",
		MeanSentiment: -0.8,
		LastDayEmotions: map[string]float64{
			domain.EmotionSadness: 0.8,
			domain.EmotionNeutral: 0.1,
		},
	})
	if got.Depression != domain.RiskHigh {
		t.Fatalf("expected high depression indicator, got %s", got.Depression)
	}
}

func TestAssessRisks_PTSDKeywordDriven(t *testing.T) {
	got := assess(RiskInputs{
		Corpus: "the flashback came back with the same nightmare about the assault",
		LastDayEmotions: map[string]float64{
			domain.EmotionFear: 0.5,
		},
	})
	if got.PTSD != domain.RiskHigh {
		t.Fatalf("expected high ptsd indicator, got %s", got.PTSD)
	}
}
