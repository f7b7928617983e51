package jetcluster

import (
	"iter"

	"github.com/vlarandev/jetcluster/cluster"
	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

// Pseudojet is a four-momentum together with its cached kinematics. See
// package pseudojet for the full API (Add, Sub, DeltaR2, ...).
type Pseudojet = pseudojet.PseudoJet

// New constructs a Pseudojet from its four components in (E, px, py, pz)
// order. It fails if any component is NaN.
func New(e, px, py, pz float64) (Pseudojet, error) {
	return pseudojet.New(e, px, py, pz)
}

// MustNew is like New but panics on invalid input.
func MustNew(e, px, py, pz float64) Pseudojet {
	return pseudojet.MustNew(e, px, py, pz)
}

// Distance is a pairwise/beam distance measure driving cluster history.
type Distance = distance.Distance

// AntiKt returns the anti-kt distance measure with radius r.
func AntiKt(r float64) Distance { return distance.AntiKt(r) }

// Kt returns the kt distance measure with radius r.
func Kt(r float64) Distance { return distance.Kt(r) }

// CambridgeAachen returns the Cambridge/Aachen distance measure with
// radius r.
func CambridgeAachen(r float64) Distance { return distance.CambridgeAachen(r) }

// GenKt returns the generalised-kt distance measure with radius r and
// exponent p.
func GenKt(r, p float64) Distance { return distance.GenKt(r, p) }

// ClusterStep is one event in a cluster history: a Combine or a Jet.
type ClusterStep = cluster.ClusterStep

// Jet is the ClusterStep.Kind value for a pseudojet emitted as a final
// jet.
const Jet = cluster.JetStep

// Combine is the ClusterStep.Kind value for two pseudojets merged into
// one.
const Combine = cluster.CombineStep

// Engine selects which cluster-history engine ClusterHistory uses.
type Engine = cluster.Engine

// EngineAuto, EngineNaive, EngineGeom and EngineTiled are the Engine
// values accepted by WithEngine.
const (
	EngineAuto  = cluster.EngineAuto
	EngineNaive = cluster.EngineNaive
	EngineGeom  = cluster.EngineGeom
	EngineTiled = cluster.EngineTiled
)

// Option configures a ClusterHistory call.
type Option = cluster.Option

// WithEngine forces ClusterHistory to use a specific engine instead of
// dispatching on input size.
func WithEngine(e Engine) Option { return cluster.WithEngine(e) }

// ClusterHistory clusters partons under d and returns the lazy, ordered
// sequence of ClusterStep events: range over it to drive the engine one
// step at a time, and stop ranging to cancel the run early. See package
// cluster for engine dispatch rules.
func ClusterHistory(partons []Pseudojet, d Distance, opts ...Option) iter.Seq[ClusterStep] {
	return cluster.ClusterHistory(partons, d, opts...)
}

// Cluster clusters partons under d and returns the resulting jets.
func Cluster(partons []Pseudojet, d Distance, opts ...Option) []Pseudojet {
	return cluster.Cluster(partons, d, opts...)
}

// ClusterIf clusters partons under d and returns the resulting jets that
// satisfy keep.
func ClusterIf(partons []Pseudojet, d Distance, keep func(Pseudojet) bool, opts ...Option) []Pseudojet {
	return cluster.ClusterIf(partons, d, keep, opts...)
}
