package distance

import "github.com/vlarandev/jetcluster/pseudojet"

// Distance is the pairwise and beam distance measure driving a clustering
// run. Implementations must be symmetric (Distance(p, q) == Distance(q, p))
// and non-negative, and must use pseudojet.DeltaR2 (which wraps φ the
// short way around) so that the naive engine and the geometric engines
// agree on which pair is nearest.
type Distance interface {
	// Distance returns the pairwise distance between p and q.
	Distance(p, q pseudojet.PseudoJet) float64

	// BeamDistance returns the distance of p to the beam axis.
	BeamDistance(p pseudojet.PseudoJet) float64
}
