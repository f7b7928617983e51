// Package pseudojet defines PseudoJet, the four-momentum value type shared
// by the distance measures and clustering engines in sibling packages.
//
// A PseudoJet is either a single particle's momentum or the running sum of
// momenta produced while merging particles into a jet. Three scalars are
// cached at construction time and refreshed on every Add/Sub:
//
//	rapidity   y   = ½·ln((E+pz)/(E−pz)), defined to be 0 when E == pz == 0
//	azimuth    φ   = atan2(py, px), normalised to [0, 2π)
//	1/p_T²         = 1/(px²+py²), +Inf when p_T² == 0
//
// All comparisons between PseudoJet scalars assume NaN has already been
// excluded at construction (see New), which is what lets ordinary float64
// comparison operators serve as a total order everywhere downstream —
// see ordfloat.go for the rationale.
package pseudojet
