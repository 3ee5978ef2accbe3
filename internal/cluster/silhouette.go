package cluster

import "math"

// SelectK corre k-means para cada k candidato y se queda con el de mejor
// silhouette medio. Empates favorecen el k más chico. El rango se acota por
// la cantidad de puntos disponibles; el llamador garantiza n >= 2.
func SelectK(points [][]float64, kMin, kMax int, seed int64, maxIter int) Result {
	n := len(points)
	if kMin < 2 {
		kMin = 2
	}
	if kMax < kMin {
		kMax = kMin
	}
	if kMax > n {
		kMax = n
	}
	if kMin > kMax {
		kMin = kMax
	}

	var best Result
	bestScore := math.Inf(-1)
	for k := kMin; k <= kMax; k++ {
		res := Run(points, k, seed, maxIter)
		score := MeanSilhouette(points, res.Assignments, res.K)
		if score > bestScore {
			bestScore = score
			best = res
		}
	}
	return best
}

// MeanSilhouette calcula el coeficiente silhouette medio sobre todos los
// puntos. Puntos en clusters unitarios aportan 0.
func MeanSilhouette(points [][]float64, assignments []int, k int) float64 {
	n := len(points)
	if n == 0 || k < 2 {
		return 0
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}

	var total float64
	for i := 0; i < n; i++ {
		own := assignments[i]
		if counts[own] <= 1 {
			continue
		}

		// Distancia media a cada cluster.
		sums := make([]float64, k)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			sums[assignments[j]] += math.Sqrt(squaredDistance(points[i], points[j]))
		}

		a := sums[own] / float64(counts[own]-1)
		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || counts[c] == 0 {
				continue
			}
			if m := sums[c] / float64(counts[c]); m < b {
				b = m
			}
		}
		if math.IsInf(b, 1) {
			continue
		}
		if max := math.Max(a, b); max > 0 {
			total += (b - a) / max
		}
	}
	return total / float64(n)
}
