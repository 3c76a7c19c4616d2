// Package observability wires structured logging and OpenTelemetry tracing
// for fraudlens. Tracing exports spans over OTLP/gRPC when enabled and falls
// back to a zero-overhead no-op provider otherwise.
package observability
