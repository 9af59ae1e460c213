package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/roadpath/heuristic"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// heapEntry is a frontier record for Dijkstra and A*.
// key is the heap priority: cumulative cost for Dijkstra, cost+estimate
// for A*. seq is the push sequence number and breaks key ties.
type heapEntry struct {
	node   int
	parent int
	key    float64
	seq    uint64
}

// entryHeap is a binary min-heap of heapEntry ordered by (key, seq).
// Stale entries are not removed on improvement; they are skipped when
// popped because their node is already closed.
type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// runner holds the mutable state of one Dijkstra or A* query.
type runner struct {
	g      *roadgraph.Graph
	est    heuristic.Estimator // nil for Dijkstra
	dist   []float64           // best-known cost, +Inf when unvisited
	closed []bool
	pred   predecessors
	pq     entryHeap
	seq    uint64
	order  []Step
}

func (r *runner) estimate(i int) float64 {
	if r.est == nil {
		return 0
	}
	return r.est.CostToGoal(i)
}

// push enqueues node with priority cost+estimate and stamps the next seq.
//
// Complexity: O(log E).
func (r *runner) push(node, parent int, cost float64) {
	heap.Push(&r.pq, heapEntry{
		node:   node,
		parent: parent,
		key:    cost + r.estimate(node),
		seq:    r.seq,
	})
	r.seq++
}

// record appends e to the processing order as a (parent, node) step.
func (r *runner) record(e heapEntry) {
	r.order = append(r.order, Step{From: r.g.Node(e.parent), To: r.g.Node(e.node)})
}

// relax runs Dijkstra (est == nil) or A* from start until goal is popped.
//
// Each pop first consults the closed set and discards stale entries. A*
// records every closed node, the goal included, before the goal test;
// Dijkstra tests for the goal first and so leaves the goal out of the
// processing order. The route weight is the goal's best-known cost.
//
// Complexity:
//
//   - Time:  O((V + E) log E); lazy deletion keeps up to E heap entries
//   - Space: O(V + E)
func relax(g *roadgraph.Graph, est heuristic.Estimator, start, goal int) searchResult {
	// 1) Per-query state: dist = +Inf, nothing closed, only start linked.
	n := g.NodeCount()
	r := &runner{
		g:      g,
		est:    est,
		dist:   make([]float64, n),
		closed: make([]bool, n),
		pred:   newPredecessors(n, start),
		pq:     make(entryHeap, 0, 64),
		order:  make([]Step, 0, 64),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}

	// 2) Seed the frontier with the start as its own parent.
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, start, 0)

	astar := est != nil
	closed := 0
	found := false
	for r.pq.Len() > 0 {
		// 3) Pop the lowest (key, seq) entry; a closed node means the
		//    entry is stale.
		e := heap.Pop(&r.pq).(heapEntry)
		if r.closed[e.node] {
			continue
		}
		r.closed[e.node] = true
		closed++

		// 4) Record and test the goal. A* records before the test,
		//    Dijkstra after it.
		if astar {
			r.record(e)
		}
		if e.node == goal {
			found = true
			break
		}
		if !astar {
			r.record(e)
		}

		// 5) Relax outgoing arcs in input order. Only a strict improvement
		//    moves the predecessor and pushes a new entry.
		for _, a := range g.Arcs(e.node) {
			next := r.dist[e.node] + a.Weight
			if next < r.dist[a.To] {
				r.dist[a.To] = next
				r.pred[a.To] = link{parent: e.node, weight: a.Weight, set: true}
				r.push(a.To, e.node, next)
			}
		}
	}

	// 6) The weight is read from dist, not summed on the walk back.
	res := searchResult{order: r.order, closed: closed, weight: r.dist[goal]}
	if found {
		res.path, _ = reconstruct(g, r.pred, start, goal)
	} else {
		res.weight = math.Inf(1)
	}
	return res
}
