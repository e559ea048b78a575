// Package middleware holds the HTTP middleware stack: the global error
// funnel, CORS, request logging, panic recovery, request IDs, the
// request-scoped logger, and optional New Relic tracing.
package middleware
