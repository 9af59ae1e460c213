package pathfind

import (
	"math"

	"github.com/katalvlaran/roadpath/roadgraph"
)

// discipline decides which end of the frontier is consumed.
type discipline int

const (
	fifo discipline = iota // queue → breadth-first
	lifo                   // stack → depth-first
)

// frontierItem pairs a node with the parent it was discovered from.
type frontierItem struct {
	node   int
	parent int
}

// walker holds the mutable state of one unweighted traversal.
type walker struct {
	g        *roadgraph.Graph
	mode     discipline
	frontier []frontierItem
	head     int // next FIFO position; unused for LIFO
	visited  []bool
	pred     predecessors
	order    []Step
}

func (w *walker) empty() bool { return w.head >= len(w.frontier) }

func (w *walker) push(it frontierItem) { w.frontier = append(w.frontier, it) }

// pop removes the next item: the oldest for fifo, the newest for lifo.
//
// Complexity: O(1).
func (w *walker) pop() frontierItem {
	if w.mode == fifo {
		it := w.frontier[w.head]
		w.head++
		return it
	}
	last := len(w.frontier) - 1
	it := w.frontier[last]
	w.frontier = w.frontier[:last]
	return it
}

// traverse runs BFS (fifo) or DFS (lifo) from start towards goal.
//
// Nodes are marked visited on discovery. A popped node is recorded in the
// processing order, then its arcs are scanned in input order; the scan
// stops the whole search as soon as the goal is discovered, so later
// neighbours of that node are never examined and the goal is never popped.
// The route weight is summed while walking predecessors back.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
func traverse(g *roadgraph.Graph, mode discipline, start, goal int) searchResult {
	// 1) Per-query state sized to the graph.
	n := g.NodeCount()
	w := &walker{
		g:        g,
		mode:     mode,
		frontier: make([]frontierItem, 0, 64),
		visited:  make([]bool, n),
		pred:     newPredecessors(n, start),
		order:    make([]Step, 0, 64),
	}

	// 2) The start is discovered up front and is its own parent.
	w.visited[start] = true
	w.push(frontierItem{node: start, parent: start})

	closed := 0
	found := false
search:
	for !w.empty() {
		// 3) Consume the frontier head (fifo) or tail (lifo) and record it.
		cur := w.pop()
		w.order = append(w.order, Step{From: g.Node(cur.parent), To: g.Node(cur.node)})
		closed++

		// only the start can be popped as the goal; any other goal is caught
		// at discovery below
		if cur.node == goal {
			found = true
			break
		}

		// 4) Discover unvisited neighbours; discovering the goal ends the
		//    search before any later arc of cur is looked at.
		for _, a := range g.Arcs(cur.node) {
			if w.visited[a.To] {
				continue
			}
			w.visited[a.To] = true
			w.pred[a.To] = link{parent: cur.node, weight: a.Weight, set: true}

			if a.To == goal {
				found = true
				break search
			}
			w.push(frontierItem{node: a.To, parent: cur.node})
		}
	}

	// 5) Walk back only when the goal was reached.
	res := searchResult{order: w.order, closed: closed, weight: math.Inf(1)}
	if found {
		res.path, res.weight = reconstruct(g, w.pred, start, goal)
	}
	return res
}
