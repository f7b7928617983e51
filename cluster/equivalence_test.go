package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlarandev/jetcluster/cluster"
	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

type stepper interface {
	Next() (cluster.ClusterStep, bool)
}

func drain(t *testing.T, eng stepper) []cluster.ClusterStep {
	t.Helper()
	var steps []cluster.ClusterStep
	for {
		step, done := eng.Next()
		if done {
			return steps
		}
		steps = append(steps, step)
	}
}

func assertSameHistory(t *testing.T, want, got []cluster.ClusterStep) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "step %d: %v != %v", i, want[i], got[i])
	}
}

func equivalenceCase(t *testing.T, partons []pseudojet.PseudoJet) {
	t.Helper()
	d := distance.AntiKt(0.4)
	clone := func() []pseudojet.PseudoJet { return append([]pseudojet.PseudoJet(nil), partons...) }

	naive := drain(t, cluster.NewNaive(clone(), d))
	geom := drain(t, cluster.NewGeom(clone(), d))
	tiled := drain(t, cluster.NewTiled(clone(), d))

	assertSameHistory(t, naive, geom)
	assertSameHistory(t, naive, tiled)
}

func TestEngineEquivalence_2To1(t *testing.T) { equivalenceCase(t, partons2To1()) }
func TestEngineEquivalence_3To2(t *testing.T) { equivalenceCase(t, partons3To2()) }
func TestEngineEquivalence_4To4(t *testing.T) { equivalenceCase(t, partons4To4()) }
func TestEngineEquivalence_8To7(t *testing.T) { equivalenceCase(t, partons8To7()) }
func TestEngineEquivalence_9To7(t *testing.T) { equivalenceCase(t, partons9To7()) }
