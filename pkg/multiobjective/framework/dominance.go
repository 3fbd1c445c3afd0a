package framework

import "fmt"

// Dominates reports whether point a Pareto-dominates point b, assuming
// minimization: a is no worse in every objective and strictly better in at
// least one. Comparing points with different objective counts is a
// programming error and panics.
func Dominates(a, b ObjectiveSpacePoint) bool {
	if len(a) != len(b) {
		panic(fmt.Sprintf("dominance: objective count mismatch, %d vs %d", len(a), len(b)))
	}
	better := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// WeaklyDominates reports whether a is no worse than b in every objective.
func WeaklyDominates(a, b ObjectiveSpacePoint) bool {
	if len(a) != len(b) {
		panic(fmt.Sprintf("dominance: objective count mismatch, %d vs %d", len(a), len(b)))
	}
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// NonDominatedFront returns the indices of the points not dominated by any
// other point in the input. Mutually non-dominating points, including exact
// duplicates, are all retained.
func NonDominatedFront(points []ObjectiveSpacePoint) []int {
	domCount := make([]int, len(points))
	for i := range points {
		for j := range points {
			if i != j && Dominates(points[j], points[i]) {
				domCount[i]++
			}
		}
	}

	var front []int
	for i, c := range domCount {
		if c == 0 {
			front = append(front, i)
		}
	}
	return front
}

// NonDominatedSort stratifies the points into successive non-dominated
// fronts: fronts[0] holds the indices of the Pareto-optimal points, fronts[1]
// the points dominated only by fronts[0], and so on.
func NonDominatedSort(points []ObjectiveSpacePoint) [][]int {
	if len(points) == 0 {
		return nil
	}

	dominated := make(map[int][]int)
	domCount := make([]int, len(points))

	// Calculate domination for each point
	for i := range points {
		dominated[i] = []int{}
		for j := range points {
			if i != j {
				if Dominates(points[i], points[j]) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(points[j], points[i]) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	var fronts [][]int
	currentFront := []int{}
	for i := range points {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	for len(currentFront) > 0 {
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
	}

	return fronts
}
