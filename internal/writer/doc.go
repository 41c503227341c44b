// Package writer persists reaction.Reaction records to a tabular CSV file
// (the module's Parquet-like columnar target has no equivalent library in
// the retrieved dependency pack; see DESIGN.md) and, optionally, fragment
// and reactive-frame snapshots in MOL2 format.
package writer
