package pathfind

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/roadpath/roadgraph"
)

// link is a predecessor entry. The zero value means "no predecessor yet";
// the start node links to itself, which ends the walk back.
type link struct {
	parent int
	weight float64 // weight of the edge parent→node
	set    bool
}

// predecessors is per-query predecessor state keyed by dense node index.
type predecessors []link

func newPredecessors(n, start int) predecessors {
	p := make(predecessors, n)
	p[start] = link{parent: start, set: true}
	return p
}

func (p predecessors) reached(i int) bool { return p[i].set }

// reconstruct walks predecessor links from goal back to start, emitting
// (pred, cur) steps, and returns them in start→goal order together with the
// sum of the traversed edge weights. An unreached goal yields (nil, +Inf).
// start == goal yields (nil, 0).
func reconstruct(g *roadgraph.Graph, pred predecessors, start, goal int) ([]Step, float64) {
	if !pred.reached(goal) {
		return nil, math.Inf(1)
	}
	var (
		steps []Step
		sum   float64
	)
	for cur := goal; cur != start; {
		l := pred[cur]
		steps = append(steps, Step{From: g.Node(l.parent), To: g.Node(cur)})
		sum += l.weight
		cur = l.parent
	}
	slices.Reverse(steps)

	return steps, sum
}
