// Package export mirrors a frozen in-memory graph store into an external
// graph database for ad-hoc exploration. The detection engine never depends
// on it: the in-memory store is fully self-sufficient, and this package is
// a one-way publisher consumed only by the CLI.
//
// The Client interface abstracts the database; Neo4jClient is the bolt
// implementation, MockClient the in-memory test double.
package export
