// Package lindemann computes the Lindemann index, a per-atom measure of
// positional fluctuation relative to neighboring atoms used to detect the
// onset of melting in an MD trajectory: q_i = mean_j( stddev(r_ij) / mean(r_ij) )
// over every other atom j, accumulated online across frames so the full
// pairwise-distance history never needs to be held in memory at once.
package lindemann
