package cluster

import (
	"iter"

	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

// history is the common interface the three engines satisfy: pull the
// next ClusterStep, or learn that none remain.
type history interface {
	Next() (ClusterStep, bool)
}

// ClusterHistory clusters partons under the given distance measure and
// returns the lazy, ordered sequence of ClusterStep events: a clustering
// run is a pure iterator, it does not suspend, block, or perform I/O, and
// no engine work happens beyond what the caller actually ranges over. The
// caller cancels a run simply by breaking out of the range loop early —
// no engine memory is retained once the range's body stops pulling.
//
// The engine is chosen automatically by input size — naive for N <= 24,
// geometric for 25 <= N <= 49, tiled geometric for N >= 50 — unless
// overridden with WithEngine. An empty input yields an empty sequence.
//
// Custom distance measures whose metric-nearest neighbour differs from
// the geometric ΔR-nearest neighbour (the measures in the distance
// package never do) should force EngineNaive via WithEngine: the
// geometric and tiled engines prune candidates using ΔR alone, and for
// such a measure may miss the true nearest neighbour.
func ClusterHistory(partons []pseudojet.PseudoJet, d distance.Distance, opts ...Option) iter.Seq[ClusterStep] {
	cfg := resolveConfig(opts)
	n := len(partons)
	return func(yield func(ClusterStep) bool) {
		var eng history
		switch engineFor(n, cfg) {
		case EngineNaive:
			eng = NewNaive(partons, d)
		case EngineGeom:
			eng = NewGeom(partons, d)
		default:
			eng = NewTiled(partons, d)
		}
		for {
			step, done := eng.Next()
			if done || !yield(step) {
				return
			}
		}
	}
}

// Cluster clusters partons under d and returns the resulting jets, in
// the order they were produced.
func Cluster(partons []pseudojet.PseudoJet, d distance.Distance, opts ...Option) []pseudojet.PseudoJet {
	jets := make([]pseudojet.PseudoJet, 0, len(partons))
	for step := range ClusterHistory(partons, d, opts...) {
		if step.Kind == JetStep {
			jets = append(jets, step.Jet)
		}
	}
	return jets
}

// ClusterIf clusters partons under d and returns the resulting jets that
// satisfy keep.
func ClusterIf(partons []pseudojet.PseudoJet, d distance.Distance, keep func(pseudojet.PseudoJet) bool, opts ...Option) []pseudojet.PseudoJet {
	jets := make([]pseudojet.PseudoJet, 0, len(partons))
	for step := range ClusterHistory(partons, d, opts...) {
		if step.Kind == JetStep && keep(step.Jet) {
			jets = append(jets, step.Jet)
		}
	}
	return jets
}
