package cluster

import (
	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

// triple is one entry of the naive engine's flat distance vector: the
// distance between pseudojets[i] and pseudojets[j], or, when i == j, the
// beam distance of pseudojets[i].
type triple struct {
	d    float64
	i, j int
}

// less gives triples the same total order as the (d, i, j) tuple
// comparison the original engine relies on for its minimum search:
// smallest distance wins, ties broken by the lower pair of indices.
func (t triple) less(o triple) bool {
	if t.d != o.d {
		return t.d < o.d
	}
	if t.i != o.i {
		return t.i < o.i
	}
	return t.j < o.j
}

// naiveEngine clusters by brute-force: it materialises every pairwise
// distance (and every beam distance) up front and re-derives only the
// O(N) entries touched by each merge, achieving O(N^3) overall.
//
// Use it directly for small inputs, or via ClusterHistory with
// WithEngine(EngineNaive) for distance measures whose nearest neighbour
// cannot be geometrically pruned.
type naiveEngine struct {
	pseudojets []pseudojet.PseudoJet
	dist       distance.Distance
	distances  []triple
}

// NewNaive builds a naive engine over partons under the given distance
// measure. partons is consumed (not aliased) by the engine.
func NewNaive(partons []pseudojet.PseudoJet, d distance.Distance) *naiveEngine {
	e := &naiveEngine{
		pseudojets: append([]pseudojet.PseudoJet(nil), partons...),
		dist:       d,
	}
	e.distances = calcDistances(e.pseudojets, d)
	return e
}

func calcDistances(pseudojets []pseudojet.PseudoJet, d distance.Distance) []triple {
	n := len(pseudojets)
	dists := make([]triple, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dists = append(dists, triple{d: d.Distance(pseudojets[i], pseudojets[j]), i: i, j: j})
		}
		dists = append(dists, triple{d: d.BeamDistance(pseudojets[i]), i: i, j: i})
	}
	return dists
}

// Next performs the next clustering step, or reports done == true once no
// pseudojets remain.
func (e *naiveEngine) Next() (step ClusterStep, done bool) {
	if len(e.distances) == 0 {
		return ClusterStep{}, true
	}
	best := e.distances[0]
	for _, t := range e.distances[1:] {
		if t.less(best) {
			best = t
		}
	}
	if best.i == best.j {
		return NewJetStep(e.extractAsJet(best.i)), false
	}
	a, b := e.combine(best.i, best.j)
	return NewCombineStep(a, b), false
}

func (e *naiveEngine) extractAsJet(i int) pseudojet.PseudoJet {
	e.distances = filterTriples(e.distances, func(t triple) bool {
		return t.i != i && t.j != i
	})
	last := len(e.pseudojets) - 1
	jet := e.pseudojets[i]
	e.pseudojets[i] = e.pseudojets[last]
	e.pseudojets = e.pseudojets[:last]
	for k := range e.distances {
		if e.distances[k].i == last {
			e.distances[k].i = i
		}
		if e.distances[k].j == last {
			e.distances[k].j = i
		}
	}
	return jet
}

func (e *naiveEngine) combine(i, j int) (a, b pseudojet.PseudoJet) {
	a, b = e.pseudojets[i], e.pseudojets[j]
	if i > j {
		i, j = j, i
	}
	e.distances = filterTriples(e.distances, func(t triple) bool {
		return t.i != j && t.j != j
	})
	last := len(e.pseudojets) - 1
	p2 := e.pseudojets[j]
	e.pseudojets[j] = e.pseudojets[last]
	e.pseudojets = e.pseudojets[:last]
	for k := range e.distances {
		if e.distances[k].i == last {
			e.distances[k].i = j
		}
		if e.distances[k].j == last {
			e.distances[k].j = j
		}
	}
	e.pseudojets[i] = e.pseudojets[i].Add(p2)
	for k := range e.distances {
		ii, jj := e.distances[k].i, e.distances[k].j
		if ii != i && jj != i {
			continue
		}
		if ii != jj {
			e.distances[k].d = e.dist.Distance(e.pseudojets[ii], e.pseudojets[jj])
		} else {
			e.distances[k].d = e.dist.BeamDistance(e.pseudojets[i])
		}
	}
	return a, b
}

func filterTriples(ts []triple, keep func(triple) bool) []triple {
	out := ts[:0]
	for _, t := range ts {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
