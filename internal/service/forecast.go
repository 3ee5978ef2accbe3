package service

import (
	"time"

	"aura-mind/internal/domain"
)

const (
	badgeBeatForecast   = "🥇 Beat the Forecast"
	badgeBalanced       = "🌈 Staying Balanced"
	msgBeatForecast     = "You're doing great — keep it up!"
	msgBalanced         = "You're maintaining your emotional balance."
	msgToughWeek        = "This week seems tough — we're here to support you 💛"
	msgNotEnoughData    = "Not enough data to forecast yet."
	minForecastDays     = 3
	seasonalityMinDays  = 14
	forecastRecentSpan  = 7
)

// ForecastMood proyecta el mood trend diario hacia adelante con una recta de
// mínimos cuadrados más un offset estacional por día de semana cuando hay
// historia suficiente. Determinista: mismo trend, misma proyección.
func ForecastMood(trend []domain.MoodPoint, horizon int) domain.MoodForecast {
	if horizon <= 0 {
		horizon = forecastRecentSpan
	}

	type obs struct {
		x       float64
		y       float64
		weekday time.Weekday
	}
	var observed []obs
	var lastDate time.Time
	for i, p := range trend {
		d, err := time.Parse(dayFormat, p.Date)
		if err != nil {
			continue
		}
		lastDate = d
		if p.AvgCompound == nil {
			continue
		}
		observed = append(observed, obs{x: float64(i), y: *p.AvgCompound, weekday: d.Weekday()})
	}

	if len(observed) < minForecastDays {
		return domain.MoodForecast{Message: msgNotEnoughData}
	}

	// Ajuste lineal por mínimos cuadrados.
	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(observed))
	for _, o := range observed {
		sumX += o.x
		sumY += o.y
		sumXY += o.x * o.y
		sumXX += o.x * o.x
	}
	denom := n*sumXX - sumX*sumX
	var slope, intercept float64
	if denom != 0 {
		slope = (n*sumXY - sumX*sumY) / denom
		intercept = (sumY - slope*sumX) / n
	} else {
		intercept = sumY / n
	}

	// Offset estacional semanal sobre los residuos, si hay historia.
	seasonal := map[time.Weekday]float64{}
	if len(observed) >= seasonalityMinDays {
		sums := map[time.Weekday]float64{}
		counts := map[time.Weekday]int{}
		for _, o := range observed {
			sums[o.weekday] += o.y - (intercept + slope*o.x)
			counts[o.weekday]++
		}
		for wd, s := range sums {
			seasonal[wd] = s / float64(counts[wd])
		}
	}

	forecast := make([]domain.ForecastPoint, 0, horizon)
	var predictedSum float64
	for d := 1; d <= horizon; d++ {
		x := float64(len(trend)-1) + float64(d)
		date := lastDate.AddDate(0, 0, d)
		y := intercept + slope*x + seasonal[date.Weekday()]
		if y > 1 {
			y = 1
		}
		if y < -1 {
			y = -1
		}
		predictedSum += y
		forecast = append(forecast, domain.ForecastPoint{
			Date:          date.Format(dayFormat),
			PredictedMood: round4(y),
		})
	}

	recent := observed
	if len(recent) > forecastRecentSpan {
		recent = recent[len(recent)-forecastRecentSpan:]
	}
	var recentSum float64
	for _, o := range recent {
		recentSum += o.y
	}
	recentActual := recentSum / float64(len(recent))
	recentForecast := predictedSum / float64(horizon)

	out := domain.MoodForecast{Forecast: forecast}
	switch diff := recentActual - recentForecast; {
	case diff >= 0.2:
		out.Badge = badgeBeatForecast
		out.Message = msgBeatForecast
	case diff >= -0.1:
		out.Badge = badgeBalanced
		out.Message = msgBalanced
	default:
		out.Message = msgToughWeek
	}
	return out
}
