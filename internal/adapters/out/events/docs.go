// Package events contains the sinks committed domain events are published to.
//
// The unit of work hands every committed event to one ports.EventPublisher. In
// production that is a Fanout over three sinks:
//
//   - AuditLogPublisher writes one structured log line per event. Order status
//     transitions carry their before and after status and timestamp.
//   - MetricsPublisher counts events in Prometheus and serves /metrics.
//   - KafkaPublisher writes each event as a JSON message keyed by aggregate id.
//
// A failing sink never stops the others. Errors are joined and returned to the
// unit of work, which logs them.
package events
