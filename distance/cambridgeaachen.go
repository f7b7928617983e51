package distance

import "github.com/vlarandev/jetcluster/pseudojet"

// cambridgeAachen implements the Cambridge/Aachen distance measure: purely
// angular, with no p_T dependence in either the pair or beam distance.
type cambridgeAachen struct {
	r2 float64
}

// CambridgeAachen returns the Cambridge/Aachen distance measure with
// radius r. Panics on a non-positive or non-finite radius; see AntiKt.
func CambridgeAachen(r float64) Distance {
	mustValidRadius(r)
	return cambridgeAachen{r2: r * r}
}

func (d cambridgeAachen) Distance(p, q pseudojet.PseudoJet) float64 {
	return pseudojet.DeltaR2(p, q) / d.r2
}

func (d cambridgeAachen) BeamDistance(p pseudojet.PseudoJet) float64 {
	return 1.
}
