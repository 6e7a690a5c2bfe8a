// Package telemetry owns the service's Prometheus registry and the
// OpenTelemetry tracer provider.
package telemetry
