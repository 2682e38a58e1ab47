// Package planstore persists completed plan runs in a SQLite database so
// earlier runs can be listed and re-exported. Each run stores a summary row
// plus the full plan JSON.
//
// The store takes a file lock on the data directory while open; concurrent
// cueplan processes sharing one database are not supported. The schema is
// versioned: add columns in schema.sql and bump schemaVersion, and users
// delete the database after a mismatch.
package planstore
