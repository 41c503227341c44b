// Package rings enumerates the smallest rings passing through each atom of
// a moleculargraph.Graph, up to a caller-supplied maximum ring size.
//
// The search is a DFS-with-backtrack over bond paths, identical in shape to
// the shortest-ring search vitroid/CountRings popularized and that
// gchemol's find_ring/find_rings ported into the Rust predecessor of this
// repository: grow a path one bond at a time, close it the moment it
// returns to its own start, and discard "shortcut" rings — closed paths
// that contain a chord shorter than the ring itself, since the true
// shortest ring through that chord will be found independently starting
// from a different triplet.
package rings
