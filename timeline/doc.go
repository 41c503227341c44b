// Package timeline tracks, per atom pair, whether a bond was present in
// each frame of a chunk. It is the bridge between per-frame
// moleculargraph.Graph snapshots and the reactive-bond detection that drives
// reaction extraction.
package timeline
