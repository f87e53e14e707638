// Package topology converts declared saga and TCC metadata into analyzable
// topology structures and renderable graphs.
//
// Everything here is a static analyzer over declared structure: analyzers
// copy declared fields verbatim, derive execution layers or ordering, and
// project the result into a graph for rendering. Structural problems
// (cycles, dangling references, duplicate orders, bad timeouts) are
// collected by the validator as findings rather than raised as errors, so
// a malformed topology stays visualizable for debugging. Every call builds
// fresh values and holds no state across invocations.
package topology
