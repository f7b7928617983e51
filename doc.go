// Package jetcluster (jetcluster) is your in-memory toolkit for turning a
// handful of four-momenta into jets.
//
// 🚀 What is jetcluster?
//
//	A small, dependency-light library that brings together:
//
//	  • Core primitives: four-momentum pseudojets with cached kinematics
//	  • Distance measures: anti-kt, kt, Cambridge/Aachen, generalised-kt
//	  • Cluster history: three interchangeable engines, picked automatically
//	    by input size, all provably agreeing on the same sequence of events
//
// ✨ Why choose jetcluster?
//
//   - Deterministic     — NaN is rejected at construction, so every
//     min-selection downstream is a plain, total-ordered float comparison
//   - Fast at every scale — naive O(N³) for tiny inputs, geometric O(N²)
//     for medium ones, tiled geometric O(N²) with bounded candidate search
//     for large ones
//   - Pure Go            — no cgo, one small third-party dependency
//
// Under the hood, everything is organized under three subpackages:
//
//	pseudojet/  — four-momentum value type, cached rapidity/azimuth/1/p_T²
//	distance/   — the four distance measures
//	cluster/    — ClusterStep, the three engines, the dispatch facade
//
// This root package re-exports the common surface so callers who don't
// need engine overrides can do everything through one import:
//
//	jets := jetcluster.Cluster(partons, jetcluster.AntiKt(0.4))
//
// Dive into the subpackages' doc comments for engine internals and
// distance-measure formulas.
//
//	go get github.com/vlarandev/jetcluster
package jetcluster
