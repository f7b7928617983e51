package distance

import (
	"fmt"
	"math"

	"github.com/vlarandev/jetcluster/pseudojet"
)

// antiKt implements the anti-kt distance measure.
type antiKt struct {
	r2 float64
}

// AntiKt returns the anti-kt distance measure with radius r. It panics if
// r is not a positive, finite number — a malformed radius is a programmer
// error, not a runtime data error, matching the teacher's functional-option
// constructors that panic on invalid configuration (e.g.
// dijkstra.WithMaxDistance).
func AntiKt(r float64) Distance {
	mustValidRadius(r)
	return antiKt{r2: r * r}
}

func (d antiKt) Distance(p, q pseudojet.PseudoJet) float64 {
	delta2 := pseudojet.DeltaR2(p, q)
	return math.Min(p.InvPt2(), q.InvPt2()) * delta2 / d.r2
}

func (d antiKt) BeamDistance(p pseudojet.PseudoJet) float64 {
	return p.InvPt2()
}

// mustValidRadius panics unless r is a positive, finite value.
func mustValidRadius(r float64) {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		panic(fmt.Sprintf("distance: invalid radius %v, must be positive and finite", r))
	}
}
