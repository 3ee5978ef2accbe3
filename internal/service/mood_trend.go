package service

import (
	"math"
	"sort"
	"time"

	"aura-mind/internal/domain"
)

const dayFormat = "2006-01-02"

// DailyMoodTrend agrega el sentimiento medio por bucket temporal (diario por
// defecto) desde el primer post hasta el último. Los buckets sin posts
// usables quedan con AvgCompound en nil: hueco explícito, nunca cero ni
// interpolado. sentiments mapea post_id -> compound solo para posts usables.
func DailyMoodTrend(posts []domain.Post, sentiments map[string]float64, bucket time.Duration) []domain.MoodPoint {
	if len(posts) == 0 {
		return nil
	}
	if bucket <= 0 {
		bucket = 24 * time.Hour
	}

	first := posts[0].CreatedAt.UTC()
	last := first
	for _, p := range posts[1:] {
		t := p.CreatedAt.UTC()
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	start := first.Truncate(bucket)
	end := last.Truncate(bucket)

	type agg struct {
		sum   float64
		count int
		posts int
	}
	buckets := make(map[time.Time]*agg)
	for _, p := range posts {
		key := p.CreatedAt.UTC().Truncate(bucket)
		a := buckets[key]
		if a == nil {
			a = &agg{}
			buckets[key] = a
		}
		a.posts++
		if c, ok := sentiments[p.ID]; ok {
			a.sum += c
			a.count++
		}
	}

	var out []domain.MoodPoint
	for t := start; !t.After(end); t = t.Add(bucket) {
		point := domain.MoodPoint{Date: formatBucket(t, bucket)}
		if a, ok := buckets[t]; ok {
			point.PostCount = a.posts
			if a.count > 0 {
				avg := a.sum / float64(a.count)
				point.AvgCompound = &avg
			}
		}
		out = append(out, point)
	}
	return out
}

func formatBucket(t time.Time, bucket time.Duration) string {
	if bucket >= 24*time.Hour {
		return t.Format(dayFormat)
	}
	return t.Format(time.RFC3339)
}

// DailyEmotionTrend agrega la mezcla emocional por día, normalizada para que
// cada día sume 1. Solo aparecen los días con al menos un post clasificado;
// las series sin señal se eliminan.
func DailyEmotionTrend(posts []domain.Post, emotions map[string]map[string]float64) domain.EmotionTrend {
	byDay := make(map[string]map[string]float64)
	for _, p := range posts {
		scores, ok := emotions[p.ID]
		if !ok {
			continue
		}
		day := p.CreatedAt.UTC().Format(dayFormat)
		agg := byDay[day]
		if agg == nil {
			agg = make(map[string]float64)
			byDay[day] = agg
		}
		for label, s := range scores {
			agg[label] += s
		}
	}
	if len(byDay) == 0 {
		return domain.EmotionTrend{}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make(map[string][]float64, len(domain.EmotionLabels))
	for _, label := range domain.EmotionLabels {
		series[label] = make([]float64, len(days))
	}
	for di, day := range days {
		agg := byDay[day]
		var total float64
		for _, s := range agg {
			total += s
		}
		if total <= 0 {
			continue
		}
		for _, label := range domain.EmotionLabels {
			series[label][di] = round4(agg[label] / total)
		}
	}

	// Series planas en cero no aportan nada al gráfico.
	for label, vals := range series {
		allZero := true
		for _, v := range vals {
			if v > 0 {
				allZero = false
				break
			}
		}
		if allZero {
			delete(series, label)
		}
	}

	return domain.EmotionTrend{Days: days, Series: series}
}

// LastDayEmotions devuelve las proporciones del último día con datos.
func LastDayEmotions(trend domain.EmotionTrend) map[string]float64 {
	out := make(map[string]float64)
	if len(trend.Days) == 0 {
		return out
	}
	last := len(trend.Days) - 1
	for label, vals := range trend.Series {
		if len(vals) > last {
			out[label] = vals[last]
		}
	}
	return out
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
