package construct

import "github.com/katalvlaran/taburoute/route"

// pqItem is one pending insertion attempt: customer is the next candidate
// to try on vehicle (kind, vehicle), which belongs to cluster.
type pqItem struct {
	kind     route.Kind
	vehicle  int
	cluster  int
	customer int
}

// priorityQueue is a container/heap.Interface ordered by each item's
// vehicle's current working time, so the least-loaded vehicle's candidate
// is always dequeued first (spec §4.F step 3/4). Priority is recomputed
// lazily at Less time rather than cached on the item, since the vehicle's
// working time changes every time one of its candidates is accepted. This
// only reorders the heap on Push/Pop, so an item sitting untouched while
// sibling vehicles accept several customers can become stale until the next
// heap operation touches it; acceptable for the constructor's one-pass
// seeding, since a late dequeue only costs a slightly suboptimal load
// balance, never an incorrect solution.
type priorityQueue struct {
	items []*pqItem
	state *greedyState
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	return pq.workingTime(pq.items[i]) < pq.workingTime(pq.items[j])
}

func (pq *priorityQueue) workingTime(item *pqItem) float64 {
	if pq.state == nil {
		return 0
	}
	var wt float64
	for _, r := range *pq.state.vehicleRoutes(item.kind, item.vehicle) {
		wt += r.WorkingTime
	}

	return wt
}

func (pq *priorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *priorityQueue) Push(x any) { pq.items = append(pq.items, x.(*pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
