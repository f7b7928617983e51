package pseudojet

import "math"

// PseudoJet is a four-momentum (E, px, py, pz) together with three scalars
// cached from it: rapidity, azimuth and 1/p_T². It is a small value type —
// copy it freely, never mutate a shared instance in place.
type PseudoJet struct {
	e, px, py, pz float64

	invPt2 float64
	phi    float64
	rap    float64
}

// E returns the energy component.
func (p PseudoJet) E() float64 { return p.e }

// Px returns the momentum component along x.
func (p PseudoJet) Px() float64 { return p.px }

// Py returns the momentum component along y.
func (p PseudoJet) Py() float64 { return p.py }

// Pz returns the momentum component along z, i.e. along the beam axis.
func (p PseudoJet) Pz() float64 { return p.pz }

// Phi returns the azimuthal angle, normalised to [0, 2π).
func (p PseudoJet) Phi() float64 { return p.phi }

// Rap returns the rapidity.
func (p PseudoJet) Rap() float64 { return p.rap }

// InvPt2 returns 1/p_T², +Inf for a purely longitudinal momentum.
func (p PseudoJet) InvPt2() float64 { return p.invPt2 }

// Pt2 returns p_T² = px²+py².
func (p PseudoJet) Pt2() float64 { return 1. / p.invPt2 }

// Zero returns the four-momentum with all components vanishing — the
// neutral element of Add. Its 1/p_T² sentinel is +Inf.
func Zero() PseudoJet {
	return PseudoJet{invPt2: math.Inf(1)}
}

// New constructs a PseudoJet from its four components in (E, px, py, pz)
// order. It fails with ErrInvalidMomentum if any component is NaN, or if the
// cached rapidity, azimuth or 1/p_T² derived from them comes out NaN (e.g.
// E < |pz|, where the rapidity log-ratio (E+pz)/(E−pz) is negative; E ==
// pz > 0 is accepted with an infinite rapidity) — total-ordered float comparisons downstream rely on no
// PseudoJet ever carrying a NaN field, cached or raw.
func New(e, px, py, pz float64) (PseudoJet, error) {
	if math.IsNaN(e) || math.IsNaN(px) || math.IsNaN(py) || math.IsNaN(pz) {
		return PseudoJet{}, ErrInvalidMomentum
	}
	p := PseudoJet{e: e, px: px, py: py, pz: pz}
	p.refreshCache()
	if math.IsNaN(p.rap) || math.IsNaN(p.phi) || math.IsNaN(p.invPt2) {
		return PseudoJet{}, ErrInvalidMomentum
	}
	return p, nil
}

// MustNew is like New but panics on invalid input. Intended for literal
// construction in tests and call sites that already know the momentum is
// well-formed — the Go equivalent of the original library's
// total-ordered-double constructor variant, which rejects NaN at the type
// level instead of via an error return.
func MustNew(e, px, py, pz float64) PseudoJet {
	p, err := New(e, px, py, pz)
	if err != nil {
		panic(err)
	}
	return p
}

// FromSlice constructs a PseudoJet from a [4]float64 in (E, px, py, pz)
// order.
func FromSlice(comp [4]float64) (PseudoJet, error) {
	return New(comp[0], comp[1], comp[2], comp[3])
}

// FromTuple constructs a PseudoJet from an (E, px, py, pz) tuple.
func FromTuple(e, px, py, pz float64) (PseudoJet, error) {
	return New(e, px, py, pz)
}

// refreshCache recomputes invPt2, phi and rap from the current components.
// Called by every constructor and by Add/Sub after mutating the underlying
// components.
func (p *PseudoJet) refreshCache() {
	pt2 := p.px*p.px + p.py*p.py
	p.invPt2 = 1. / pt2

	if pt2 > 0 {
		p.phi = math.Atan2(p.py, p.px)
	} else {
		p.phi = 0
	}
	if p.phi < 0 {
		p.phi += 2 * math.Pi
	}
	if p.phi >= 2*math.Pi {
		p.phi -= 2 * math.Pi
	}

	if p.e == 0 && p.pz == 0 {
		p.rap = 0
	} else {
		p.rap = math.Log((p.e+p.pz)/(p.e-p.pz)) / 2
	}
}
