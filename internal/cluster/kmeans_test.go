package cluster

import (
	"math"
	"testing"
)

// testPoints genera una matriz determinista de features sin depender de rand.
func testPoints(n, dim int) [][]float64 {
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, dim)
		for d := 0; d < dim; d++ {
			row[d] = math.Sin(float64(i*dim+d)*1.7) * 0.5
		}
		points[i] = row
	}
	return points
}

func TestRunDeterministic(t *testing.T) {
	points := testPoints(20, 6)

	a := Run(points, 3, 42, 100)
	b := Run(points, 3, 42, 100)

	if a.K != b.K || a.Iterations != b.Iterations {
		t.Fatalf("expected identical runs, got %+v vs %+v", a, b)
	}
	for i := range a.Assignments {
		if a.Assignments[i] != b.Assignments[i] {
			t.Fatalf("assignment %d differs: %d vs %d", i, a.Assignments[i], b.Assignments[i])
		}
	}
	for c := range a.Centroids {
		for d := range a.Centroids[c] {
			if a.Centroids[c][d] != b.Centroids[c][d] {
				t.Fatalf("centroid %d dim %d differs: %v vs %v", c, d, a.Centroids[c][d], b.Centroids[c][d])
			}
		}
	}
}

func TestRunAssignsEveryPointAndNoEmptyClusters(t *testing.T) {
	points := testPoints(12, 4)
	res := Run(points, 4, 42, 100)

	if len(res.Assignments) != len(points) {
		t.Fatalf("expected %d assignments, got %d", len(points), len(res.Assignments))
	}
	counts := make([]int, res.K)
	for _, a := range res.Assignments {
		if a < 0 || a >= res.K {
			t.Fatalf("assignment out of range: %d", a)
		}
		counts[a]++
	}
	for c, n := range counts {
		if n == 0 {
			t.Fatalf("cluster %d is empty", c)
		}
	}
}

func TestRunConvergesOnSeparatedBlobs(t *testing.T) {
	var points [][]float64
	for i := 0; i < 5; i++ {
		points = append(points, []float64{10 + float64(i)*0.01, 10})
	}
	for i := 0; i < 5; i++ {
		points = append(points, []float64{-10 - float64(i)*0.01, -10})
	}

	res := Run(points, 2, 42, 100)
	if !res.Converged {
		t.Fatalf("expected convergence, iterations=%d", res.Iterations)
	}
	first := res.Assignments[0]
	for i := 1; i < 5; i++ {
		if res.Assignments[i] != first {
			t.Fatalf("expected first blob in one cluster, got %v", res.Assignments)
		}
	}
	for i := 5; i < 10; i++ {
		if res.Assignments[i] == first {
			t.Fatalf("expected second blob in the other cluster, got %v", res.Assignments)
		}
	}
}

func TestRunIterationCapReportsNonconvergence(t *testing.T) {
	points := testPoints(20, 6)

	res := Run(points, 3, 42, 1)
	if res.Converged {
		t.Fatalf("expected nonconvergence with a single iteration")
	}
	if res.Iterations != 1 {
		t.Fatalf("expected exactly one iteration, got %d", res.Iterations)
	}
	// La mejor asignación alcanzada se devuelve igual: completa y en rango.
	if len(res.Assignments) != len(points) {
		t.Fatalf("expected %d assignments, got %d", len(points), len(res.Assignments))
	}
	for i, a := range res.Assignments {
		if a < 0 || a >= res.K {
			t.Fatalf("assignment %d out of range: %d", i, a)
		}
	}
}

func TestRunKCappedByPoints(t *testing.T) {
	points := testPoints(3, 2)
	res := Run(points, 6, 42, 100)
	if res.K != 3 {
		t.Fatalf("expected k capped to 3, got %d", res.K)
	}
}

func TestSelectKFindsTwoBlobs(t *testing.T) {
	var points [][]float64
	for i := 0; i < 8; i++ {
		points = append(points, []float64{5 + math.Sin(float64(i))*0.1, 5})
	}
	for i := 0; i < 8; i++ {
		points = append(points, []float64{-5 + math.Sin(float64(i))*0.1, -5})
	}

	res := SelectK(points, 2, 6, 42, 100)
	if res.K != 2 {
		t.Fatalf("expected silhouette to pick k=2, got %d", res.K)
	}
}

func TestMeanSilhouetteSeparatedBeatsMixed(t *testing.T) {
	points := [][]float64{{0, 0}, {0.1, 0}, {10, 10}, {10.1, 10}}
	good := MeanSilhouette(points, []int{0, 0, 1, 1}, 2)
	bad := MeanSilhouette(points, []int{0, 1, 0, 1}, 2)
	if good <= bad {
		t.Fatalf("expected separated assignment to score higher: good=%v bad=%v", good, bad)
	}
	if good <= 0.9 {
		t.Fatalf("expected near-perfect silhouette for clean separation, got %v", good)
	}
}
