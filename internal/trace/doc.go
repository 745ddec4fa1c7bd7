// Package trace journals slide transitions for the console overlay.
//
// The journal is a fixed ring: each confirmed transition lands with its
// wall time, the slide pair, and the cause that triggered it. Readers
// get an oldest-first snapshot and never block writers for long.
package trace
