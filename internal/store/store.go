// Package store provides the storage abstraction behind the service
// layer. Handlers and services depend on the Store interface only, so a
// real backing store can replace the in-memory one without touching
// handler logic.
package store

// Store is a keyed record store with sequential ID issuance.
type Store[T any] interface {
	// NextID issues the next identifier, "<prefix>_<n>".
	NextID() string
	Put(id string, rec T)
	Get(id string) (T, bool)
	// List returns records in insertion order.
	List() []T
	Len() int
}
