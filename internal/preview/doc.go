// Package preview serves a document over HTTP while it is being written.
//
// Every request builds a fresh document, so each response reflects the
// blueprint as it is on disk. When watching is enabled, connected browsers
// reload after the blueprint changes, or show the build error when it no
// longer builds.
//
// Routes:
//
//	GET /                the generated document
//	GET /_xhtml/reload   live-reload websocket
//	GET /metrics         Prometheus metrics
//	GET /healthz         liveness
package preview
