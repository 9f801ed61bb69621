// Package preview serves a live-reloading reference page for a
// binding schema.
//
// The page is rendered with the DSL's own constructors, so the
// preview doubles as an end-to-end check of the generated bindings. A
// timestamp-polling watcher reloads the schema when it changes and a
// WebSocket hub tells connected browsers to refresh. Prometheus
// metrics for renders and reload clients are exposed on /metrics.
package preview
