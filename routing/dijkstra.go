package routing

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ripnet/core"
)

// shortest computes metrics and predecessors from source over t.
//
// Unlike a plain neighbor walk it iterates incident edges, so parallel links
// between the same pair compete on weight and the cheapest one wins.
func shortest(t *core.Topology, source string, cfg Options) (map[string]int64, map[string]string, error) {
	src, err := t.Node(source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	nodes := t.Nodes()
	r := &runner{
		cfg:     cfg,
		dist:    make(map[string]int64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	for _, n := range nodes {
		r.dist[n.Address()] = Unreachable
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: src, dist: 0})

	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	cfg     Options
	dist    map[string]int64  // address → best metric so far
	prev    map[string]string // address → predecessor on the best path
	visited map[string]bool   // finalized addresses
	pq      nodePQ
}

// process pops nodes in metric order until the heap is empty or the cap is passed.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node.Address()
		if r.visited[u] {
			continue
		}
		if item.dist > r.cfg.MaxMetric {
			break
		}
		r.visited[u] = true
		r.relax(item.node)
	}
}

// relax tries to improve every neighbor of u through each incident edge.
func (r *runner) relax(u *core.Node) {
	du := r.dist[u.Address()]
	for _, e := range u.Edges() {
		v := e.Other(u)
		nd := du + int64(e.Weight())
		if nd > r.cfg.MaxMetric || nd >= r.dist[v.Address()] {
			continue
		}
		r.dist[v.Address()] = nd
		r.prev[v.Address()] = u.Address()
		heap.Push(&r.pq, &nodeItem{node: v, dist: nd})
	}
}

// nodeItem is a heap entry: a node and a tentative metric.
type nodeItem struct {
	node *core.Node
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, with address as a
// tie-break so equal-metric pops are deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node.Address() < pq[j].node.Address()
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
