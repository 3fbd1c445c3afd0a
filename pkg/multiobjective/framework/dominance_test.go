package framework

import (
	"math/rand/v2"
	"testing"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b ObjectiveSpacePoint
		want bool
	}{
		{"strictly better in all", ObjectiveSpacePoint{1, 2}, ObjectiveSpacePoint{2, 3}, true},
		{"better in one, equal in other", ObjectiveSpacePoint{1, 3}, ObjectiveSpacePoint{2, 3}, true},
		{"equal vectors", ObjectiveSpacePoint{1, 2}, ObjectiveSpacePoint{1, 2}, false},
		{"trade-off", ObjectiveSpacePoint{1, 3}, ObjectiveSpacePoint{3, 1}, false},
		{"worse in all", ObjectiveSpacePoint{2, 3}, ObjectiveSpacePoint{1, 2}, false},
		{"single objective", ObjectiveSpacePoint{1}, ObjectiveSpacePoint{2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dominates(tt.a, tt.b); got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Dominance is a strict partial order: a and b can never dominate each other
// at the same time.
func TestDominatesAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 1000; i++ {
		a := ObjectiveSpacePoint{rng.Float64(), rng.Float64(), rng.Float64()}
		b := ObjectiveSpacePoint{rng.Float64(), rng.Float64(), rng.Float64()}
		if Dominates(a, b) && Dominates(b, a) {
			t.Fatalf("both %v and %v dominate each other", a, b)
		}
		if Dominates(a, a) {
			t.Fatalf("%v dominates itself", a)
		}
	}
}

func TestDominatesPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on objective count mismatch")
		}
	}()
	Dominates(ObjectiveSpacePoint{1, 2}, ObjectiveSpacePoint{1, 2, 3})
}

func TestNonDominatedFront(t *testing.T) {
	tests := []struct {
		name   string
		points []ObjectiveSpacePoint
		want   []int
	}{
		{
			"dominated point removed",
			[]ObjectiveSpacePoint{{1, 2}, {2, 3}},
			[]int{0},
		},
		{
			"trade-off retained",
			[]ObjectiveSpacePoint{{1, 3}, {3, 1}},
			[]int{0, 1},
		},
		{
			"duplicates both retained",
			[]ObjectiveSpacePoint{{1, 1}, {1, 1}, {2, 2}},
			[]int{0, 1},
		},
		{
			"empty input",
			nil,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonDominatedFront(tt.points)
			if len(got) != len(tt.want) {
				t.Fatalf("NonDominatedFront(%v) = %v, want %v", tt.points, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("NonDominatedFront(%v) = %v, want %v", tt.points, got, tt.want)
				}
			}
		})
	}
}

func TestNonDominatedSort(t *testing.T) {
	points := []ObjectiveSpacePoint{
		{1, 1}, // front 0
		{2, 2}, // front 1, dominated only by {1,1}
		{0, 3}, // front 0
		{3, 3}, // front 2
	}
	fronts := NonDominatedSort(points)
	if len(fronts) != 3 {
		t.Fatalf("expected 3 fronts, got %d: %v", len(fronts), fronts)
	}
	if len(fronts[0]) != 2 || len(fronts[1]) != 1 || len(fronts[2]) != 1 {
		t.Fatalf("unexpected front sizes: %v", fronts)
	}
	if fronts[1][0] != 1 || fronts[2][0] != 3 {
		t.Fatalf("unexpected front membership: %v", fronts)
	}

	// Every front must be internally non-dominated.
	for _, front := range fronts {
		for _, i := range front {
			for _, j := range front {
				if i != j && Dominates(points[i], points[j]) {
					t.Fatalf("front contains dominated point: %d dominates %d", i, j)
				}
			}
		}
	}
}
