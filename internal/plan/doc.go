// Package plan runs the full narration pipeline — phrase splitting, topic
// boundary detection, block construction, and emphasis selection — over
// immutable inputs and assembles the result the renderer consumes.
//
// The engine is pure: no I/O, no shared mutable state, derived from scratch
// for every script. Independent runs may execute in parallel.
package plan
