// Package distance provides the jet distance measures used to drive
// clustering in package cluster: anti-kt, kt, Cambridge/Aachen and
// generalised-kt, each parameterised by a radius R (and, for gen-kt, an
// exponent p).
//
// All four measures factor as
//
//	distance(p1, p2) = coef(p1, p2) · ΔR²(p1, p2) / R²
//	beamDistance(p)  = coefBeam(p)
//
// with coef/coefBeam differing per measure (see the Distance
// implementations in this package). The beam distance is what makes
// clustering inclusive: a pseudojet whose beam distance is smaller than
// every pair distance to it is declared a jet rather than merged.
package distance
