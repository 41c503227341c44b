// Package coordination buckets a molecular graph's per-atom degree
// (coordination number) into a histogram and mean, a direct byproduct of
// the adjacency structure bond.Infer already builds — not a separate
// analysis pass over the trajectory.
package coordination
