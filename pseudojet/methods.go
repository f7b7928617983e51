package pseudojet

import "math"

// Add returns the componentwise sum p+q, with cached scalars recomputed
// from the new components. p and q are left unmodified.
func (p PseudoJet) Add(q PseudoJet) PseudoJet {
	r := PseudoJet{e: p.e + q.e, px: p.px + q.px, py: p.py + q.py, pz: p.pz + q.pz}
	r.refreshCache()
	return r
}

// Sub returns the componentwise difference p-q, with cached scalars
// recomputed from the new components. p and q are left unmodified.
func (p PseudoJet) Sub(q PseudoJet) PseudoJet {
	r := PseudoJet{e: p.e - q.e, px: p.px - q.px, py: p.py - q.py, pz: p.pz - q.pz}
	r.refreshCache()
	return r
}

// DeltaPhi returns the azimuthal separation p.Phi()-q.Phi(), normalised to
// (−π, π]: the short way around the φ=0/2π seam.
func DeltaPhi(p, q PseudoJet) float64 {
	d := p.phi - q.phi
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// DeltaPhiAbs returns |DeltaPhi(p, q)|, normalised to [0, π].
func DeltaPhiAbs(p, q PseudoJet) float64 {
	return math.Abs(DeltaPhi(p, q))
}

// DeltaEta returns the rapidity separation p.Rap()-q.Rap().
func DeltaEta(p, q PseudoJet) float64 {
	return p.rap - q.rap
}

// DeltaR2 returns the squared angular distance DeltaPhi² + DeltaEta²
// between p and q in the (rapidity, azimuth) plane.
func DeltaR2(p, q PseudoJet) float64 {
	dphi := DeltaPhi(p, q)
	deta := DeltaEta(p, q)
	return dphi*dphi + deta*deta
}

// Equal reports whether p and q have byte-identical four-momentum
// components. Cached scalars are a deterministic function of the
// components, so component equality implies scalar equality.
func (p PseudoJet) Equal(q PseudoJet) bool {
	return p.e == q.e && p.px == q.px && p.py == q.py && p.pz == q.pz
}
