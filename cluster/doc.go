// Package cluster implements inclusive jet clustering: given a collection
// of pseudojet.PseudoJet values and a distance.Distance measure, it
// repeatedly merges the closest pair of pseudojets (or emits one as a jet,
// if its beam distance is smaller) until none remain.
//
// The hard part is the cluster-history engine: a dynamic nearest-neighbour
// data structure over a shrinking point set in the (rapidity, azimuth)
// plane. Three engines are provided, dispatched by input size through
// ClusterHistory:
//
//	N ≤ 24        naive engine    — O(N³), materialises every pair distance
//	25 ≤ N ≤ 49   geometric engine — O(N²), per-pseudojet nearest pointers
//	N ≥ 50        tiled engine     — O(N²) with a bounded 3×3 tile window
//
// All three produce identical ClusterStep sequences on identical input —
// see equivalence_test.go. Use Cluster or ClusterIf for the
// common case of "give me the resulting jets"; use ClusterHistory directly
// to observe the Combine/Jet steps as they happen.
package cluster
