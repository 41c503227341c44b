// Package bond infers a moleculargraph.Graph from a single frame.Frame by a
// covalent-radius distance cutoff. Inference is a pure function of its input
// frame and is safe to call concurrently from many goroutines, which is
// exactly how scheduler fans it out across a chunk.
package bond
