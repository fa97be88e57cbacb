// Package store owns the patient and appointment record collections. Each
// store keeps its collection in memory, serializes every mutation behind a
// lock, and rewrites the full collection through the persistence adapter on
// every change.
package store

import "errors"

// Sentinel errors surfaced by store operations. Callers branch with
// errors.Is to pick the HTTP status.
var (
	// ErrNotFound means the operation referenced an id absent from the
	// collection.
	ErrNotFound = errors.New("record not found")

	// ErrValidation means the draft was rejected before any state changed.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence means the adapter could not durably write. The store
	// does not retry; in-memory state is rolled back so the failed mutation
	// never partially applies.
	ErrPersistence = errors.New("persistence failure")
)
