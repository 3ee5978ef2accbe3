package service

import (
	"strings"
	"testing"

	"aura-mind/internal/domain"
)

func TestBuildQuickInsight(t *testing.T) {
	aura := &domain.AuraCard{Aura: domain.AuraBrightYellow.Aura, Description: domain.AuraBrightYellow.Description}
	got := BuildQuickInsight(domain.EmotionJoy, 0.42, aura)
	if !strings.Contains(got, "joy affect") {
		t.Fatalf("expected dominant affect in insight, got %q", got)
	}
	if !strings.Contains(got, "+0.42") {
		t.Fatalf("expected signed sentiment in insight, got %q", got)
	}

	empty := BuildQuickInsight("", -0.1, nil)
	if !strings.Contains(empty, "balanced affect") {
		t.Fatalf("expected balanced fallback, got %q", empty)
	}
}

func TestBuildTrendSummary(t *testing.T) {
	if got := BuildTrendSummary(domain.EmotionTrend{}); got != "No data available." {
		t.Fatalf("expected no-data message, got %q", got)
	}

	trend := domain.EmotionTrend{
		Days: []string{"2026-01-01"},
		Series: map[string][]float64{
			domain.EmotionJoy:     {0.75},
			domain.EmotionSadness: {0.25},
		},
	}
	got := BuildTrendSummary(trend)
	if !strings.Contains(got, "joy: 75%") || !strings.Contains(got, "sadness: 25%") {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestBuildSessionTips_QuietProfile(t *testing.T) {
	tips := BuildSessionTips(domain.DefaultRiskAssessment())
	if len(tips) != 2 {
		t.Fatalf("expected rapport tip plus closing tip, got %v", tips)
	}
	if !strings.Contains(tips[0], "rapport") {
		t.Fatalf("expected rapport tip first, got %q", tips[0])
	}
}

func TestBuildSessionTips_SafetyFirst(t *testing.T) {
	risks := domain.DefaultRiskAssessment()
	risks.Suicidal = domain.RiskHigh
	risks.Depression = domain.RiskModerate

	tips := BuildSessionTips(risks)
	if !strings.Contains(tips[0], "safety") {
		t.Fatalf("expected safety tip first, got %q", tips[0])
	}
	if !strings.Contains(tips[len(tips)-1], "session goals") {
		t.Fatalf("expected closing tip last, got %q", tips[len(tips)-1])
	}
	if len(tips) != 3 {
		t.Fatalf("expected safety, depression and closing tips, got %v", tips)
	}
}
