// Package daemon runs the draftd HTTP server: single-instance file lock,
// listener lifecycle, router, middleware, and the JSON wire schemas. All
// domain behavior lives in internal/api; handlers here only decode requests,
// call the service, and map errors onto HTTP statuses.
package daemon
