package service

import (
	"testing"
	"time"

	"aura-mind/internal/domain"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestDailyMoodTrend_BucketsAndGaps(t *testing.T) {
	posts := []domain.Post{
		{ID: "p1", CreatedAt: day(t, "2026-01-01T10:00:00Z")},
		{ID: "p2", CreatedAt: day(t, "2026-01-01T18:30:00Z")},
		{ID: "p3", CreatedAt: day(t, "2026-01-02T09:00:00Z"), Skipped: true},
		{ID: "p4", CreatedAt: day(t, "2026-01-04T12:00:00Z")},
	}
	sentiments := map[string]float64{"p1": 0.5, "p2": 0.3, "p4": -0.2}

	trend := DailyMoodTrend(posts, sentiments, 24*time.Hour)

	if len(trend) != 4 {
		t.Fatalf("expected 4 daily buckets, got %d", len(trend))
	}
	if trend[0].Date != "2026-01-01" || trend[3].Date != "2026-01-04" {
		t.Fatalf("unexpected bucket dates: %s .. %s", trend[0].Date, trend[3].Date)
	}

	if trend[0].AvgCompound == nil || *trend[0].AvgCompound != 0.4 {
		t.Fatalf("expected avg 0.4 on first day, got %v", trend[0].AvgCompound)
	}
	if trend[0].PostCount != 2 {
		t.Fatalf("expected 2 posts on first day, got %d", trend[0].PostCount)
	}

	// El post del segundo día fue salteado: cuenta como post, no como señal.
	if trend[1].PostCount != 1 {
		t.Fatalf("expected 1 post on second day, got %d", trend[1].PostCount)
	}
	if trend[1].AvgCompound != nil {
		t.Fatalf("expected nil avg on day with only skipped posts, got %v", *trend[1].AvgCompound)
	}

	// El tercer día no tiene posts: hueco explícito.
	if trend[2].PostCount != 0 || trend[2].AvgCompound != nil {
		t.Fatalf("expected empty gap bucket, got %+v", trend[2])
	}

	if trend[3].AvgCompound == nil || *trend[3].AvgCompound != -0.2 {
		t.Fatalf("expected avg -0.2 on last day, got %v", trend[3].AvgCompound)
	}
}

func TestDailyMoodTrend_Empty(t *testing.T) {
	if got := DailyMoodTrend(nil, nil, 24*time.Hour); got != nil {
		t.Fatalf("expected nil trend for no posts, got %v", got)
	}
}

func TestDailyEmotionTrend_NormalizesPerDay(t *testing.T) {
	posts := []domain.Post{
		{ID: "p1", CreatedAt: day(t, "2026-01-01T10:00:00Z")},
		{ID: "p2", CreatedAt: day(t, "2026-01-01T15:00:00Z")},
		{ID: "p3", CreatedAt: day(t, "2026-01-02T10:00:00Z")},
	}
	emotions := map[string]map[string]float64{
		"p1": {domain.EmotionJoy: 0.8, domain.EmotionNeutral: 0.2},
		"p2": {domain.EmotionJoy: 0.2, domain.EmotionNeutral: 0.8},
		"p3": {domain.EmotionSadness: 1.0},
	}

	trend := DailyEmotionTrend(posts, emotions)

	if len(trend.Days) != 2 {
		t.Fatalf("expected 2 days, got %v", trend.Days)
	}
	if trend.Series[domain.EmotionJoy][0] != 0.5 || trend.Series[domain.EmotionNeutral][0] != 0.5 {
		t.Fatalf("expected joy/neutral 0.5 on first day, got joy=%v neutral=%v",
			trend.Series[domain.EmotionJoy][0], trend.Series[domain.EmotionNeutral][0])
	}
	if trend.Series[domain.EmotionSadness][1] != 1.0 {
		t.Fatalf("expected sadness 1.0 on second day, got %v", trend.Series[domain.EmotionSadness][1])
	}
	if _, ok := trend.Series[domain.EmotionAnger]; ok {
		t.Fatalf("expected all-zero series to be pruned")
	}

	// Cada día normalizado debe sumar 1.
	for di := range trend.Days {
		var total float64
		for _, vals := range trend.Series {
			total += vals[di]
		}
		if total < 0.999 || total > 1.001 {
			t.Fatalf("day %d does not sum to 1: %v", di, total)
		}
	}
}

func TestLastDayEmotions(t *testing.T) {
	trend := domain.EmotionTrend{
		Days: []string{"2026-01-01", "2026-01-02"},
		Series: map[string][]float64{
			domain.EmotionJoy:     {0.5, 0.0},
			domain.EmotionSadness: {0.0, 1.0},
		},
	}
	last := LastDayEmotions(trend)
	if last[domain.EmotionSadness] != 1.0 || last[domain.EmotionJoy] != 0.0 {
		t.Fatalf("unexpected last day emotions: %v", last)
	}

	if got := LastDayEmotions(domain.EmotionTrend{}); len(got) != 0 {
		t.Fatalf("expected empty map for empty trend, got %v", got)
	}
}
