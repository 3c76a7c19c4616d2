// Package graph provides the in-memory property-graph store at the core of
// fraudlens. It holds typed entities (users, devices, accounts, transactions)
// and directed, typed relationships between entity identifiers.
//
// The store has a two-phase lifecycle: a write phase during ingestion,
// followed by Freeze, after which it is read-only and safe for concurrent
// detection queries. Relationship endpoints are raw identifier strings and
// are not required to resolve to loaded entities; traversal helpers report a
// miss as "absent" rather than an error.
//
// Iteration order is deterministic: entities and relationship source nodes
// are visited in first-insertion order, and edges from a given source in
// append order. Detection results that depend on encounter order are
// therefore stable for a given ingestion sequence.
package graph
