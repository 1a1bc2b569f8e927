// Package snapshot persists fetched subway datasets in a local SQLite
// database. The network data changes rarely, so repeated CLI runs reuse the
// cached snapshot instead of refetching until it goes stale.
package snapshot
