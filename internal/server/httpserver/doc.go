// Package httpserver provides the HTTP server for the task API.
//
// This package implements:
//
//   - server.go: HTTP server lifecycle (start, graceful shutdown)
//   - router.go: Route and middleware composition
//   - middleware.go: Request ID, recovery, CORS, audit and metrics middleware
//
// Request handlers live in the handler subpackage.
package httpserver
