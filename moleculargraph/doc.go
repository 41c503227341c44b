// Package moleculargraph is the in-memory graph that backs a single MD frame:
// nodes are atom IDs, edges are the bonds BondInference infers between them.
//
// A Graph is thread-safe under a single sync.RWMutex guarding adjacency, so
// per-frame graphs built concurrently by the bond-inference fan-out never
// race, and the chunk scheduler can repair individual edges after noise
// filtering without re-deriving the whole frame.
//
// Pairs are always canonicalised: {u,v} and {v,u} name the same edge.
package moleculargraph
