package generators

import (
	"fmt"
	"sort"

	"mockapi/src/domain"
)

// topoSort returns node indices in execution order. depsFn(i) yields the
// indices that must run before i.
//
// When several nodes are ready the smallest index wins, so the order only
// depends on registration order.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}
			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int
	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, domain.ErrDependencyCycle
	}
	return order, nil
}
