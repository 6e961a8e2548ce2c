// Package store implements the in-memory task store: an insertion-ordered
// collection of task records with validating create and partial-update
// operations. The store is session-scoped — it starts empty, may be seeded
// from an imported snapshot, and is discarded when the process exits.
package store
