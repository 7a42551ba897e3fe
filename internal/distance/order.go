package distance

import (
	"cmp"
	"slices"
)

// Order returns the indices of scores sorted by ascending Distance. Entries
// with equal distances keep their input order. Complete does not take part
// in the ordering.
func Order(scores []Score) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[a].Distance, scores[b].Distance)
	})
	return order
}
