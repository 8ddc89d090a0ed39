// Package widgets contains dumb render primitives.
//
// Allowed here:
// - named style descriptors and the cache that builds them once
// - stateless composition helpers (rows and columns with flexible spacers, bars)
//
// Not allowed here:
// - key handling, focus, enablement, change tracking, or panel lifecycle
package widgets
