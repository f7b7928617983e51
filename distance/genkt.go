package distance

import (
	"fmt"
	"math"

	"github.com/vlarandev/jetcluster/pseudojet"
)

// genKt implements the generalised-kt distance measure, parameterised by
// an exponent p applied to p_T² (p=1 recovers kt, p=0 recovers
// Cambridge/Aachen, p=-1 recovers anti-kt).
type genKt struct {
	r2  float64
	pow float64
}

// GenKt returns the generalised-kt distance measure with radius r and
// exponent p. Panics on a non-positive/non-finite r, or a NaN p.
func GenKt(r, p float64) Distance {
	mustValidRadius(r)
	if math.IsNaN(p) {
		panic(fmt.Sprintf("distance: invalid exponent %v for gen-kt", p))
	}
	return genKt{r2: r * r, pow: p}
}

func (d genKt) Distance(p, q pseudojet.PseudoJet) float64 {
	delta2 := pseudojet.DeltaR2(p, q)
	return math.Min(math.Pow(p.Pt2(), d.pow), math.Pow(q.Pt2(), d.pow)) * delta2 / d.r2
}

func (d genKt) BeamDistance(p pseudojet.PseudoJet) float64 {
	return math.Pow(p.Pt2(), d.pow)
}
