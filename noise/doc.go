// Package noise implements the event-code noise filter used to suppress
// transient bond flickers in a single atom pair's bonding timeline: bonds
// that break and reform (or form and break) within a short window are
// thermal vibration, not chemistry.
package noise
