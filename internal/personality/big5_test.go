package personality

import "testing"

func TestAnalyzeEmptyCorpusDefaults(t *testing.T) {
	got := Analyze(nil)
	// Con densidades cero los rasgos con rango [-0.005, 0.02] quedan en 20
	// y el resto en 0.
	if got.Openness != 0 || got.Extraversion != 0 || got.Neuroticism != 0 {
		t.Fatalf("expected zero-signal traits at 0, got %+v", got)
	}
	if got.Conscientiousness != 20 || got.Agreeableness != 20 {
		t.Fatalf("expected baseline 20 for bipolar traits, got %+v", got)
	}
}

func TestAnalyzeTotalAndBounded(t *testing.T) {
	samples := [][]string{
		nil,
		{""},
		{"grateful curious excited learn explore create together helpful"},
		{"anxious anxiety worry overthink stressed panic afraid nervous tired alone hopeless"},
		{"schedule plan routine goal deadline organize checklist task"},
	}
	for _, texts := range samples {
		got := Analyze(texts)
		for name, v := range map[string]int{
			"openness":          got.Openness,
			"conscientiousness": got.Conscientiousness,
			"extraversion":      got.Extraversion,
			"agreeableness":     got.Agreeableness,
			"neuroticism":       got.Neuroticism,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("trait %s out of bounds: %d", name, v)
			}
		}
	}
}

func TestAnalyzeWorrySignalRaisesNeuroticism(t *testing.T) {
	calm := Analyze([]string{"today i walked to the park and watched the ducks"})
	worried := Analyze([]string{"i feel anxious and stressed, full of worry and panic"})
	if worried.Neuroticism <= calm.Neuroticism {
		t.Fatalf("expected worry lexicon to raise neuroticism: calm=%d worried=%d",
			calm.Neuroticism, worried.Neuroticism)
	}
}

func TestAnalyzeSocialSignalRaisesExtraversion(t *testing.T) {
	solo := Analyze([]string{"quiet evening reading alone at home"})
	social := Analyze([]string{"meet friends at the party, talk with the team and community"})
	if social.Extraversion <= solo.Extraversion {
		t.Fatalf("expected social lexicon to raise extraversion: solo=%d social=%d",
			solo.Extraversion, social.Extraversion)
	}
}

func TestAnalyzeMonotonicInPlanfulSignal(t *testing.T) {
	base := Analyze([]string{"some plain words", "more filler text here"})
	planned := Analyze([]string{"plan the schedule", "organize the checklist and set a goal"})
	if planned.Conscientiousness <= base.Conscientiousness {
		t.Fatalf("expected planful lexicon to raise conscientiousness: base=%d planned=%d",
			base.Conscientiousness, planned.Conscientiousness)
	}
}
