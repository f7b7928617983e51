package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlarandev/jetcluster/cluster"
	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

func TestGeomEngine_EmptyInputIsImmediatelyDone(t *testing.T) {
	eng := cluster.NewGeom(nil, distance.AntiKt(0.4))
	_, done := eng.Next()
	assert.True(t, done)
}

func TestGeomEngine_TwoCollinearPartonsCombine(t *testing.T) {
	a := pseudojet.MustNew(10, 1, 0, 2)
	b := pseudojet.MustNew(20, 2, 0, 4)
	eng := cluster.NewGeom([]pseudojet.PseudoJet{a, b}, distance.AntiKt(0.4))

	step, done := eng.Next()
	require.False(t, done)
	assert.True(t, step.Equal(cluster.NewCombineStep(a, b)))

	step, done = eng.Next()
	require.False(t, done)
	assert.True(t, step.Jet.Equal(a.Add(b)))

	_, done = eng.Next()
	assert.True(t, done)
}

func TestGeomEngine_MatchesNaiveOn9To7(t *testing.T) {
	partons := partons9To7()
	naive := drain(t, cluster.NewNaive(append([]pseudojet.PseudoJet(nil), partons...), distance.AntiKt(0.4)))
	geom := drain(t, cluster.NewGeom(append([]pseudojet.PseudoJet(nil), partons...), distance.AntiKt(0.4)))
	assertSameHistory(t, naive, geom)
}
