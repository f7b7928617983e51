package jetcluster_test

import (
	"fmt"

	"github.com/vlarandev/jetcluster"
)

// Example shows the common case: build pseudojets, pick a distance
// measure, cluster.
func Example() {
	partons := []jetcluster.Pseudojet{
		jetcluster.MustNew(0.2626773221934335, -0.08809521946454194, -0.1141608706693822, -0.2195584284654444),
		jetcluster.MustNew(2.21902459329915, -0.7529973704809976, -0.9658189214109036, -1.850475321845671),
	}
	jets := jetcluster.Cluster(partons, jetcluster.AntiKt(0.4))
	fmt.Println(len(jets))
	// Output: 1
}
