package cluster

import (
	"math"
	"math/rand"
)

// Result es la salida de una corrida de k-means. Dada la misma matriz de
// features y la misma semilla, el resultado es bit a bit reproducible.
type Result struct {
	K           int
	Assignments []int
	Centroids   [][]float64
	Iterations  int
	Converged   bool
}

// Run ejecuta k-means con seeding k-means++ determinista (semilla fija),
// asignación por distancia euclídea con desempate por índice de cluster más
// bajo, y recolocación de centroides vacíos al punto más lejano de su
// centroide asignado. Corta al estabilizarse la asignación o al llegar a
// maxIter; en ese caso Converged queda en false y se usa la mejor asignación
// alcanzada.
func Run(points [][]float64, k int, seed int64, maxIter int) Result {
	n := len(points)
	if n == 0 || k <= 0 {
		return Result{K: 0, Converged: true}
	}
	if k > n {
		k = n
	}
	if maxIter <= 0 {
		maxIter = 100
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := seedPlusPlus(points, k, rng)
	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}

	iterations := 0
	converged := false
	for iterations < maxIter {
		iterations++

		next := assignAll(points, centroids)
		relocateEmpty(points, centroids, next, k)

		if equalAssignments(assignments, next) {
			converged = true
			assignments = next
			break
		}
		assignments = next
		centroids = recomputeCentroids(points, assignments, centroids, k)
	}

	return Result{
		K:           k,
		Assignments: assignments,
		Centroids:   centroids,
		Iterations:  iterations,
		Converged:   converged,
	}
}

// seedPlusPlus elige centroides iniciales con k-means++: el primero al azar
// (rng sembrado) y los siguientes con probabilidad proporcional a D(x)².
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(points[rng.Intn(n)]))

	dists := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if dd := squaredDistance(p, c); dd < d {
					d = dd
				}
			}
			dists[i] = d
			total += d
		}
		if total == 0 {
			// Todos los puntos coinciden con algún centroide; elegir al azar.
			centroids = append(centroids, clone(points[rng.Intn(n)]))
			continue
		}
		target := rng.Float64() * total
		var cum float64
		chosen := n - 1
		for i, d := range dists {
			cum += d
			if cum >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, clone(points[chosen]))
	}
	return centroids
}

func assignAll(points [][]float64, centroids [][]float64) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = nearestCentroid(p, centroids)
	}
	return out
}

// nearestCentroid devuelve el índice del centroide más cercano; empates se
// resuelven por el índice más bajo (la comparación estricta lo garantiza).
func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := squaredDistance(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := squaredDistance(p, centroids[c]); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// relocateEmpty re-siembra cada cluster vacío en el punto más alejado de su
// centroide asignado y reasigna ese punto, para no dejar clusters vacíos.
func relocateEmpty(points [][]float64, centroids [][]float64, assignments []int, k int) {
	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}
	for c := 0; c < k; c++ {
		if counts[c] > 0 {
			continue
		}
		farIdx := -1
		farDist := -1.0
		for i, p := range points {
			if counts[assignments[i]] <= 1 {
				continue
			}
			if d := squaredDistance(p, centroids[assignments[i]]); d > farDist {
				farDist = d
				farIdx = i
			}
		}
		if farIdx < 0 {
			continue
		}
		counts[assignments[farIdx]]--
		assignments[farIdx] = c
		counts[c] = 1
		centroids[c] = clone(points[farIdx])
	}
}

func recomputeCentroids(points [][]float64, assignments []int, prev [][]float64, k int) [][]float64 {
	dim := len(points[0])
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := 0; c < k; c++ {
		sums[c] = make([]float64, dim)
	}
	for i, p := range points {
		c := assignments[i]
		counts[c]++
		for d := 0; d < dim; d++ {
			sums[c][d] += p[d]
		}
	}
	out := make([][]float64, k)
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			out[c] = clone(prev[c])
			continue
		}
		for d := 0; d < dim; d++ {
			sums[c][d] /= float64(counts[c])
		}
		out[c] = sums[c]
	}
	return out
}

func equalAssignments(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
