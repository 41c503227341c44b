// Package reaction extracts a Reaction record — reactant and product
// fragments, their compositions, and their fingerprints — from a pair of
// consecutive, denoised molecular graphs known to differ by at least one bond.
package reaction
