package cluster

import (
	"strconv"

	"github.com/vlarandev/jetcluster/pseudojet"
)

// StepKind discriminates the two ClusterStep variants.
type StepKind int

const (
	// CombineStep indicates two pseudojets were merged into one.
	CombineStep StepKind = iota
	// JetStep indicates a pseudojet was emitted as a final jet.
	JetStep
)

// ClusterStep is one event in a cluster history: either two pseudojets
// being combined into a new one, or a pseudojet being declared a jet.
//
// Equality of a CombineStep is order-insensitive in its two operands:
// Combine(a, b) == Combine(b, a).
type ClusterStep struct {
	Kind    StepKind
	Jet     pseudojet.PseudoJet    // valid when Kind == JetStep
	Combine [2]pseudojet.PseudoJet // valid when Kind == CombineStep
}

// NewJetStep builds a JetStep event.
func NewJetStep(p pseudojet.PseudoJet) ClusterStep {
	return ClusterStep{Kind: JetStep, Jet: p}
}

// NewCombineStep builds a CombineStep event from the two pre-merge
// operands, in whatever order the caller discovered them.
func NewCombineStep(a, b pseudojet.PseudoJet) ClusterStep {
	return ClusterStep{Kind: CombineStep, Combine: [2]pseudojet.PseudoJet{a, b}}
}

// Equal reports whether s and o represent the same clustering event.
// CombineStep operands are compared order-insensitively.
func (s ClusterStep) Equal(o ClusterStep) bool {
	if s.Kind != o.Kind {
		return false
	}
	if s.Kind == JetStep {
		return s.Jet.Equal(o.Jet)
	}
	a, b := s.Combine[0], s.Combine[1]
	c, d := o.Combine[0], o.Combine[1]
	return (a.Equal(c) && b.Equal(d)) || (a.Equal(d) && b.Equal(c))
}

// Key returns a string canonicalising s for use as a map/set key in tests
// that need to deduplicate or compare sets of ClusterStep values — the
// Go stand-in for the original library's order-insensitive Hash impl.
// CombineStep operands are canonicalised via pseudojet.Less before
// formatting, so Key(Combine(a,b)) == Key(Combine(b,a)).
func (s ClusterStep) Key() string {
	if s.Kind == JetStep {
		return jetKey(s.Jet)
	}
	a, b := s.Combine[0], s.Combine[1]
	if pseudojet.Less(b, a) {
		a, b = b, a
	}
	return jetKey(a) + "|" + jetKey(b)
}

func jetKey(p pseudojet.PseudoJet) string {
	return formatFloat(p.E()) + "," + formatFloat(p.Px()) + "," + formatFloat(p.Py()) + "," + formatFloat(p.Pz())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
