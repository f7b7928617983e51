package distance

import (
	"math"

	"github.com/vlarandev/jetcluster/pseudojet"
)

// kt implements the kt distance measure.
type kt struct {
	r2 float64
}

// Kt returns the kt distance measure with radius r. Panics on a
// non-positive or non-finite radius; see AntiKt.
func Kt(r float64) Distance {
	mustValidRadius(r)
	return kt{r2: r * r}
}

func (d kt) Distance(p, q pseudojet.PseudoJet) float64 {
	delta2 := pseudojet.DeltaR2(p, q)
	return math.Min(p.Pt2(), q.Pt2()) * delta2 / d.r2
}

func (d kt) BeamDistance(p pseudojet.PseudoJet) float64 {
	return p.Pt2()
}
