// Package loader parses a directed edge-list text stream into a csr.Graph.
//
// Each line is blank, a "//" comment, or two whitespace-separated
// non-negative decimal integers "u v" naming a directed edge u->v. The
// vertex count is inferred as one plus the largest node ID seen; it is not
// required that IDs be dense or start at 0. Parse failures are reported
// with the offending line number; I/O failures are surfaced unchanged.
package loader
