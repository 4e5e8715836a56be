// Package format is the external formatter named in the rest of this
// repo: per-state ANSI background colours and tape rendering wrappers,
// kept out of the decider and enumerator core so their output never
// depends on whether a terminal is attached.
package format
