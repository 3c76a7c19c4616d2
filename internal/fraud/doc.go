// Package fraud implements the detection engine: a fixed set of read-only
// pattern-matching queries over a frozen graph store, each covering one
// fraud heuristic (device sharing, rapid transfers, large transactions,
// laundering sentinels, account-takeover risk, suspicious user networks).
//
// Every query is a pure read with no shared mutable state, so queries may
// run concurrently with each other; Engine.Run does exactly that. The only
// non-deterministic input is wall-clock "now" for the rapid-transfer window,
// which is captured once per query invocation through the detector's clock.
//
// Queries never fail on malformed or dangling relationship endpoints:
// entities that cannot be resolved are skipped or surfaced as "Unknown".
// The single construction-time error class is invalid thresholds.
package fraud
