package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlarandev/jetcluster/cluster"
	"github.com/vlarandev/jetcluster/pseudojet"
)

func TestClusterStep_CombineEqualityIsOrderInsensitive(t *testing.T) {
	a := pseudojet.MustNew(10, 1, 0, 2)
	b := pseudojet.MustNew(20, 0, 3, 4)
	ab := cluster.NewCombineStep(a, b)
	ba := cluster.NewCombineStep(b, a)
	assert.True(t, ab.Equal(ba))
	assert.Equal(t, ab.Key(), ba.Key())
}

func TestClusterStep_CombineNotEqualToDifferentPair(t *testing.T) {
	a := pseudojet.MustNew(10, 1, 0, 2)
	b := pseudojet.MustNew(20, 0, 3, 4)
	c := pseudojet.MustNew(30, 1, 1, 1)
	assert.False(t, cluster.NewCombineStep(a, b).Equal(cluster.NewCombineStep(a, c)))
}

func TestClusterStep_JetStepEquality(t *testing.T) {
	a := pseudojet.MustNew(10, 1, 0, 2)
	b := pseudojet.MustNew(10, 1, 0, 2)
	assert.True(t, cluster.NewJetStep(a).Equal(cluster.NewJetStep(b)))
}

func TestClusterStep_JetAndCombineNeverEqual(t *testing.T) {
	a := pseudojet.MustNew(10, 1, 0, 2)
	assert.False(t, cluster.NewJetStep(a).Equal(cluster.NewCombineStep(a, a)))
}
